package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 16
)

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, idLength)
}

// GeneratePrefixedID gera IDs como out_Xa91... para facilitar a leitura em logs
func GeneratePrefixedID(prefix string) (string, error) {
	id, err := GenerateID()
	if err != nil {
		return "", err
	}
	return prefix + "_" + id, nil
}
