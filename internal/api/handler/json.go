package handler

import (
	jsoniter "github.com/json-iterator/go"
)

// json substitui o encoding/json padrão em todos os handlers do pacote
var json = jsoniter.ConfigCompatibleWithStandardLibrary
