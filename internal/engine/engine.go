package engine

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/img2clean/internal/config"
	"github.com/ivlev/img2clean/internal/job"
	"github.com/ivlev/img2clean/internal/raster"
	"github.com/ivlev/img2clean/internal/remover"
	"github.com/ivlev/img2clean/internal/sink"
	"github.com/ivlev/img2clean/internal/source"
	"github.com/ivlev/img2clean/internal/system"
)

// CleanProject гоняет все изображения источника через проходы удаления
// цвета и сохраняет результаты. Изображения независимы, поэтому
// обрабатываются параллельно; каждый буфер принадлежит ровно одному
// воркеру.
type CleanProject struct {
	Config *config.Config
	Source source.Source
	Writer *sink.Writer

	passes []pass
}

// pass — скомпилированный проход: движок плюс режим вывода.
type pass struct {
	engine *remover.Engine
	mode   remover.Mode
}

func NewCleanProject(cfg *config.Config, src source.Source, w *sink.Writer) *CleanProject {
	return &CleanProject{
		Config: cfg,
		Source: src,
		Writer: w,
	}
}

// compilePasses превращает конфигурацию (или файл задания) в список
// проходов. Вся валидация цвета/порога/режима происходит здесь, до
// запуска воркеров.
func (p *CleanProject) compilePasses() error {
	specs := []job.Pass{{
		Colour:    p.Config.Colour,
		Threshold: p.Config.Threshold,
		Mode:      p.Config.Mode,
	}}

	if p.Config.JobFile != "" {
		j, err := job.Read(p.Config.JobFile)
		if err != nil {
			return fmt.Errorf("ошибка чтения задания: %v", err)
		}
		if len(j.Passes) == 0 {
			return fmt.Errorf("задание %s не содержит проходов", p.Config.JobFile)
		}
		specs = j.Passes
		fmt.Printf("[*] Используется задание: %s (%d проходов)\n", p.Config.JobFile, len(specs))
	}

	for i, spec := range specs {
		colour, err := raster.ParseColour(spec.Colour)
		if err != nil {
			return fmt.Errorf("проход %d: %v", i+1, err)
		}
		if spec.Threshold < 1 {
			return fmt.Errorf("проход %d: %v", i+1, remover.ErrInvalidThreshold)
		}
		mode, err := remover.ParseMode(spec.Mode)
		if err != nil {
			return fmt.Errorf("проход %d: %v", i+1, err)
		}

		eng := remover.NewEngine(colour, spec.Threshold)
		eng.Log = log.Printf
		p.passes = append(p.passes, pass{engine: eng, mode: mode})
	}

	return nil
}

func (p *CleanProject) Run() error {
	startTime := time.Now()

	if err := p.compilePasses(); err != nil {
		return err
	}

	count := p.Source.Count()
	if count == 0 {
		return fmt.Errorf("источник не содержит изображений")
	}

	// Оцениваем стоимость одного изображения по первому элементу.
	workers := p.Config.Workers
	if w, h, err := p.Source.Dimensions(0); err == nil {
		workers = system.ChooseWorkers(workers, uint64(w)*uint64(h))
	} else {
		workers = system.ChooseWorkers(workers, 0)
	}
	if workers > count {
		workers = count
	}

	fmt.Println("--- [PROJECT: COLOUR CLEANER] ---")
	fmt.Printf("[*] Источник: %s | Изображений: %d\n", p.Config.InputPath, count)
	fmt.Printf("[*] Проходов: %d | Воркеров: %d | Вывод: %s\n", len(p.passes), workers, p.Writer.Dir)
	fmt.Println("---------------------------------")

	results := make([]string, count)
	var removedTotal atomic.Int64
	var done atomic.Int64

	var g errgroup.Group
	g.SetLimit(workers)

	for i := 0; i < count; i++ {
		g.Go(func() error {
			removed, path, err := p.processOne(i)
			if err != nil {
				// Ошибка одного файла не останавливает пакет.
				log.Printf("[!] Ошибка обработки %s: %v", p.Source.Name(i), err)
				return nil
			}
			results[i] = path
			removedTotal.Add(int64(removed))
			fmt.Printf("[>] Готово: %d/%d (%s)\n", done.Add(1), int64(count), p.Source.Name(i))
			return nil
		})
	}

	g.Wait()

	okCount := 0
	for _, r := range results {
		if r != "" {
			okCount++
		}
	}
	if okCount == 0 {
		return fmt.Errorf("ни одно изображение не было обработано. Проверьте логи")
	}

	totalTime := time.Since(startTime)
	fmt.Printf("[+++] Успех! Обработано %d/%d, удалено %d пикселей\n",
		okCount, count, removedTotal.Load())

	if p.Config.ShowStats {
		p.reportStats(okCount, count, removedTotal.Load(), totalTime)
	}

	return nil
}

// processOne прогоняет одно изображение через все проходы и сохраняет
// результат (и извлеченные пиксели для проходов в режиме extract).
func (p *CleanProject) processOne(index int) (removed int, outPath string, err error) {
	buf, err := p.Source.Load(index)
	if err != nil {
		return 0, "", err
	}

	name := p.Source.Name(index)

	for i, pass := range p.passes {
		res, err := pass.engine.Process(buf, pass.mode)
		if err != nil {
			return 0, "", fmt.Errorf("проход %d: %w", i+1, err)
		}
		removed += res.Removed
		buf = res.Output

		if res.Extracted != nil {
			suffix := "_s"
			if len(p.passes) > 1 {
				suffix = fmt.Sprintf("_s%d", i+1)
			}
			if _, err := p.Writer.Save(name+suffix, res.Extracted); err != nil {
				return 0, "", err
			}
		}
	}

	outPath, err = p.Writer.Save(name, buf)
	if err != nil {
		return 0, "", err
	}
	return removed, outPath, nil
}

func (p *CleanProject) reportStats(okCount, count int, removed int64, totalTime time.Duration) {
	fps := float64(okCount) / totalTime.Seconds()
	report := fmt.Sprintf(
		"--- [PERFORMANCE REPORT] ---\n"+
			"Build: %s\n"+
			"Total Time: %.2fs\n"+
			"Images: %d/%d\n"+
			"Removed Pixels: %d\n"+
			"Images/sec: %.2f\n"+
			"----------------------------\n",
		p.Config.BuildVersion, totalTime.Seconds(), okCount, count, removed, fps,
	)
	fmt.Print(report)

	// Логирование в файл
	logEntry := fmt.Sprintf("[%s] Build: %s | Input: %s | Images: %d/%d | Removed: %d | Total: %.2fs\n",
		time.Now().Format("2006-01-02 15:04:05"),
		p.Config.BuildVersion,
		filepath.Base(p.Config.InputPath),
		okCount,
		count,
		removed,
		totalTime.Seconds(),
	)

	f, err := os.OpenFile("benchmark.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		f.WriteString(logEntry)
		f.Close()
	} else {
		fmt.Printf("[!] Не удалось записать benchmark.log: %v\n", err)
	}
}
