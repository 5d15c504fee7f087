package utils

import (
	jsoniter "github.com/json-iterator/go"
)

var prettyJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson devolve a representação JSON indentada de um valor, usada nos
// logs de depuração. Bytes já serializados são reindentados; valores que não
// podem ser serializados viram string vazia.
func PrettyJson(in any) string {
	if raw, ok := in.([]byte); ok {
		var decoded any
		if err := prettyJSON.Unmarshal(raw, &decoded); err != nil {
			return string(raw)
		}
		in = decoded
	}

	out, err := prettyJSON.MarshalIndent(in, "", "\t")
	if err != nil {
		return ""
	}

	return string(out)
}
