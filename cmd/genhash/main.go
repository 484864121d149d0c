// cmd/genhash — Genera el hash bcrypt para ADMIN_PASSWORD_HASH.
// Uso: go run ./cmd/genhash <password>
package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Uso: go run ./cmd/genhash <password>")
		fmt.Println("Ejemplo: go run ./cmd/genhash miPassword123")
		os.Exit(1)
	}

	h, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), 12)
	if err != nil {
		panic(err)
	}
	fmt.Println("\nHash generado:")
	fmt.Println(string(h))
	fmt.Println("\nCopia este valor en tu .env como ADMIN_PASSWORD_HASH")
}
