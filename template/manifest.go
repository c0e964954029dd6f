package template

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/CodMac/java-autotemplate/model"
	"github.com/CodMac/java-autotemplate/noisefilter"
)

// LoadManifest 读取处理器输出的 JSONL 清单, 为每条记录注册一个工厂。
// filter 为 nil 时保留全部 import。返回注册的模板数量。
func LoadManifest(r io.Reader, reg *Registry, filter noisefilter.NoiseFilter) (int, error) {
	if filter == nil {
		filter = &noisefilter.DefaultNoiseFilter{}
	}

	dec := json.NewDecoder(r)
	count := 0
	for {
		var spec model.TemplateSpec
		if err := dec.Decode(&spec); err != nil {
			if errors.Is(err, io.EOF) {
				return count, nil
			}
			return count, fmt.Errorf("failed to decode manifest record %d: %w", count+1, err)
		}
		if spec.Owner == "" || spec.Name == "" {
			return count, fmt.Errorf("manifest record %d: owner and name are required", count+1)
		}

		spec.Imports = noisefilter.Filter(filter, spec.Imports)
		tmpl := FromSpec(&spec)
		if err := reg.Register(spec.Owner, spec.Name, func() (*Template, error) { return tmpl, nil }); err != nil {
			return count, err
		}
		count++
	}
}
