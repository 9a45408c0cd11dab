package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/ivlev/img2clean/internal/config"
	"github.com/ivlev/img2clean/internal/engine"
	"github.com/ivlev/img2clean/internal/sink"
	"github.com/ivlev/img2clean/internal/source"
	"github.com/ivlev/img2clean/internal/system"
)

func main() {
	// Увеличиваем лимиты системы (для macOS/Linux)
	system.InitResourceLimits()

	// Создаем нужные директории, если их нет
	dirs := []string{"input", "out"}
	for _, d := range dirs {
		os.MkdirAll(d, 0755)
	}

	inputPtr := flag.String("input", "input", "Путь к изображению, папке с изображениями или PDF")
	outputPtr := flag.String("output", "out", "Папка для результатов")
	colourPtr := flag.String("colour", "", "Удаляемый цвет в формате R,G,B (например, 0,0,0)")
	thresholdPtr := flag.Int("threshold", 1, "Минимальный размер связной области (в пикселях) для удаления")
	modePtr := flag.String("mode", "extract", "Режим: erase, extract (доп. файл <имя>_s с удаленными пикселями), crop")
	formatPtr := flag.String("format", "png", "Формат вывода: png, webp")
	workersPtr := flag.Int("workers", runtime.NumCPU(), "Потоки")
	dpiPtr := flag.Int("dpi", 300, "DPI растеризации страниц PDF")
	jobPtr := flag.String("job", "", "YAML-файл задания с несколькими проходами (перекрывает -colour/-threshold/-mode)")
	statsPtr := flag.Bool("stats", false, "Показать отчет о производительности")

	flag.Parse()

	if *jobPtr == "" && *colourPtr == "" {
		log.Fatalf("[-] Ошибка: укажите -colour R,G,B или -job файл.yaml")
	}

	var src source.Source
	var err error

	if strings.HasSuffix(strings.ToLower(*inputPtr), ".pdf") {
		src, err = source.NewFitzPDFSource(*inputPtr, *dpiPtr)
	} else {
		src, err = source.NewImageSource(*inputPtr)
	}

	if err != nil {
		log.Fatalf("[-] Ошибка инициализации источника: %v", err)
	}
	defer src.Close()

	if src.Count() == 0 {
		log.Fatalf("[-] Ошибка: в источнике нет изображений")
	}

	enc, err := sink.NewEncoder(*formatPtr)
	if err != nil {
		log.Fatalf("[-] Ошибка: %v", err)
	}

	if err := os.MkdirAll(*outputPtr, 0755); err != nil {
		log.Fatalf("[-] Не удалось создать папку вывода: %v", err)
	}

	cfg := &config.Config{
		InputPath: *inputPtr,
		OutputDir: *outputPtr,
		Colour:    *colourPtr,
		Threshold: *thresholdPtr,
		Mode:      *modePtr,
		Format:    *formatPtr,
		Workers:   *workersPtr,
		DPI:       *dpiPtr,
		JobFile:   *jobPtr,
		ShowStats: *statsPtr,
	}

	writer := &sink.Writer{Dir: cfg.OutputDir, Enc: enc}

	project := engine.NewCleanProject(cfg, src, writer)
	if err := project.Run(); err != nil {
		log.Fatalf("[-] Ошибка проекта: %v", err)
	}

	fmt.Printf("[+++] Результаты: %s\n", cfg.OutputDir)
}
