package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	qrcode "github.com/skip2/go-qrcode"
)

// Генерирует тестовое изображение для img2clean: QR-код — это крупные
// связные черные области на белом фоне, идеальный вход для проверки
// порога удаления.
func main() {
	textPtr := flag.String("text", "https://example.com/img2clean", "Содержимое QR-кода")
	sizePtr := flag.Int("size", 512, "Размер изображения в пикселях")
	outPtr := flag.String("output", "input/sample_qr.png", "Путь к создаваемому PNG")

	flag.Parse()

	if err := os.MkdirAll(filepath.Dir(*outPtr), 0755); err != nil {
		log.Fatalf("[-] Не удалось создать папку: %v", err)
	}

	if err := qrcode.WriteFile(*textPtr, qrcode.Medium, *sizePtr, *outPtr); err != nil {
		log.Fatalf("[-] Ошибка генерации QR-кода: %v", err)
	}

	fmt.Printf("[+++] Тестовое изображение сохранено: %s\n", *outPtr)
	fmt.Println("[*] Попробуйте: img2clean -input", *outPtr, "-colour 0,0,0 -threshold 50")
}
