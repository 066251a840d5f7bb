package codec

import (
	"github.com/danielgtaylor/huma/v2"
)

// HumaFormat exposes a codec to huma's content negotiation.
func HumaFormat(c Codec) huma.Format {
	return huma.Format{
		Marshal:   c.Marshal,
		Unmarshal: c.Unmarshal,
	}
}

// HumaFormats returns a fresh format table serving both codecs. The short
// keys cover structured suffixes such as application/problem+json.
func HumaFormats() map[string]huma.Format {
	jsonFormat := HumaFormat(JSON{})
	xmlFormat := HumaFormat(XML{})

	return map[string]huma.Format{
		ContentTypeJSON: jsonFormat,
		"json":          jsonFormat,
		ContentTypeXML:  xmlFormat,
		"xml":           xmlFormat,
	}
}

// HumaConfig is huma's default config serving JSON and XML. The schema link
// hook is dropped so response bodies keep exactly the record's fields.
func HumaConfig(title, version string) huma.Config {
	config := huma.DefaultConfig(title, version)
	config.Formats = HumaFormats()
	config.DefaultFormat = ContentTypeJSON
	config.CreateHooks = nil
	return config
}
