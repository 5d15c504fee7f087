package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

// Alfabeto sem símbolos, para identificadores fáceis de ler e ditar
const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Seis caracteres bastam para comprovantes de venda de uma única loja
const idLength = 6

// GenerateID gera o identificador curto dos comprovantes de venda
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}
