package learning

import "encoding/json"

import "github.com/a8m/envsubst"
import "github.com/go-viper/mapstructure/v2"
import "github.com/pkg/errors"

// ReadFile loads hyper parameters from a json file. ${VAR} references are expanded
// from the environment first. Keys missing from the file keep their current value.
func (h *HyperParameters) ReadFile(name string) error {
	buf, err := envsubst.ReadFile(name)
	if err != nil {
		return errors.Wrapf(err, "reading config %q", name)
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(buf, &raw); err != nil {
		return errors.Wrapf(err, "parsing config %q", name)
	}
	return h.Decode(raw)
}

// Decode overwrites the hyper parameters named in raw and validates the result
func (h *HyperParameters) Decode(raw map[string]interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           h,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(raw); err != nil {
		return errors.Wrap(err, "decoding hyper parameters")
	}
	return h.Validate()
}
