package utils

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson serializa in com indentação de dois espaços
func PrettyJson(in any) string {
	out, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		logrus.WithError(err).Error("Erro ao serializar JSON")
		return ""
	}

	return string(out)
}
