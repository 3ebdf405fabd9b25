package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateTag gera um identificador curto para marcar registros criados pela ferramenta
func GenerateTag() (string, error) {
	return gonanoid.Generate(characters, 8)
}
