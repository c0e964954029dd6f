package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/CodMac/java-autotemplate/model"
	"github.com/CodMac/java-autotemplate/noisefilter"
)

type JSONLWriter struct {
	encoder *json.Encoder
}

func NewJSONLWriter(w io.Writer) *JSONLWriter {
	enc := json.NewEncoder(w)
	// 模板代码里的 <, >, & 原样输出
	enc.SetEscapeHTML(false)
	return &JSONLWriter{encoder: enc}
}

func (w *JSONLWriter) Write(v any) error {
	return w.encoder.Encode(v)
}

// WriteTemplates 逐行写出模板清单; filter 非 nil 时先去掉隐式可见的 import
func (w *JSONLWriter) WriteTemplates(specs []*model.TemplateSpec, filter noisefilter.NoiseFilter) (int, error) {
	count := 0
	for _, spec := range specs {
		out := *spec
		if filter != nil {
			out.Imports = noisefilter.Filter(filter, spec.Imports)
		}
		if out.Imports == nil {
			out.Imports = []string{}
		}
		if err := w.Write(&out); err != nil {
			return count, fmt.Errorf("failed to write template %s_%s: %w", spec.Owner, spec.Name, err)
		}
		count++
	}
	return count, nil
}

// ExportTemplates 把模板清单写到 path; path 为空或 "-" 时写到标准输出
func ExportTemplates(path string, specs []*model.TemplateSpec, filter noisefilter.NoiseFilter) (int, error) {
	if path == "" || path == "-" {
		return NewJSONLWriter(os.Stdout).WriteTemplates(specs, filter)
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n, err := NewJSONLWriter(f).WriteTemplates(specs, filter)
	if err != nil {
		return n, err
	}
	return n, f.Close()
}
