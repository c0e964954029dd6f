package output

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/CodMac/java-autotemplate/model"
	"github.com/CodMac/java-autotemplate/template"
	"github.com/CodMac/java-autotemplate/x/java"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSpecs() []*model.TemplateSpec {
	return []*model.TemplateSpec{
		{
			Owner:      "com.acme.Recipe$Visitor",
			Name:       "newList",
			Parameters: []model.Parameter{},
			Code:       "new ArrayList<String>()",
			Imports:    []string{"java.util.ArrayList", "java.lang.String"},
		},
		{
			Owner: "com.acme.Recipe$Visitor",
			Name:  "empty",
			Code:  "1",
		},
	}
}

func TestJSONLWriter_WriteTemplates(t *testing.T) {
	var buf bytes.Buffer
	specs := sampleSpecs()

	n, err := NewJSONLWriter(&buf).WriteTemplates(specs, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"Code":"new ArrayList<String>()"`)
	assert.Contains(t, lines[0], `"Imports":["java.util.ArrayList","java.lang.String"]`)
	assert.Contains(t, lines[1], `"Imports":[]`)

	// 输入不被修改
	assert.Nil(t, specs[1].Imports)
}

func TestJSONLWriter_FilterImplicitImports(t *testing.T) {
	var buf bytes.Buffer
	specs := sampleSpecs()

	_, err := NewJSONLWriter(&buf).WriteTemplates(specs, java.NewJavaNoiseFilter())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"Imports":["java.util.ArrayList"]`)
	assert.Equal(t, []string{"java.util.ArrayList", "java.lang.String"}, specs[0].Imports)
}

// 写出的清单可以被模板注册表直接加载
func TestExportTemplates_RoundTripIntoRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.jsonl")
	n, err := ExportTemplates(path, sampleSpecs(), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	reg := template.NewRegistry()
	loaded, err := template.LoadManifest(f, reg, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded)

	tmpl, err := reg.Lookup("com.acme.Recipe$Visitor", "newList")
	require.NoError(t, err)
	assert.Equal(t, "new ArrayList<String>()", tmpl.Code())
}

func TestExportTemplates_BadPath(t *testing.T) {
	_, err := ExportTemplates(filepath.Join(t.TempDir(), "missing", "out.jsonl"), sampleSpecs(), nil)
	assert.Error(t, err)
}
