// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"bytes"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// BarberID identifica um barbeiro e é a chave de agregação das estatísticas.
// O backend usa ids textuais ("lele", "riccardo"), mas ids numéricos também
// são aceitos e mantidos na forma textual.
type BarberID string

func (id *BarberID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = BarberID(s)
		return nil
	}

	raw := string(data)
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*id = BarberID(strconv.FormatInt(i, 10))
		return nil
	}
	if _, err := strconv.ParseFloat(raw, 64); err == nil {
		*id = BarberID(raw)
		return nil
	}

	// Objetos, listas e booleanos não identificam nenhum barbeiro
	*id = ""
	return nil
}

type Barber struct {
	ID      BarberID `json:"id"`
	Name    string   `json:"name,omitempty"`
	RoleKey string   `json:"roleKey,omitempty"`
}
