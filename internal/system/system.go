package system

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"syscall"

	"github.com/shirou/gopsutil/v3/mem"
)

func InitResourceLimits() {
	var rLimit syscall.Rlimit
	err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rLimit)
	if err != nil {
		log.Printf("[!] Не удалось получить лимит файлов: %v", err)
		return
	}

	rLimit.Cur = 2048
	if rLimit.Cur > rLimit.Max {
		rLimit.Cur = rLimit.Max
	}

	err = syscall.Setrlimit(syscall.RLIMIT_NOFILE, &rLimit)
	if err != nil {
		log.Printf("[!] Не удалось установить лимит файлов: %v", err)
	} else {
		fmt.Printf("[*] Системный лимит открытых файлов увеличен до %d\n", rLimit.Cur)
	}
}

// Расширения изображений, которые умеет читать ImageSource.
var imageExtensions = []string{".bmp", ".jpg", ".jpeg", ".gif", ".png"}

// IsImageFile проверяет имя файла по списку поддерживаемых расширений
// (без учета регистра, как в оригинальном инструменте).
func IsImageFile(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// FindImages возвращает отсортированный список изображений в папке.
func FindImages(dir string) ([]string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		if IsImageFile(f.Name()) {
			paths = append(paths, filepath.Join(dir, f.Name()))
		}
	}

	sort.Strings(paths)
	return paths, nil
}

// ChooseWorkers подбирает размер пула воркеров: не больше числа ядер и
// не больше, чем позволяет доступная память. На одно изображение в
// обработке уходит буфер пикселей, карта посещенных и, в режиме
// извлечения, второй буфер — считаем с запасом 6 байт на пиксель x3.
func ChooseWorkers(requested int, pixelsPerImage uint64) int {
	workers := requested
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		log.Printf("[!] Не удалось получить информацию о памяти: %v", err)
		return workers
	}

	perImage := pixelsPerImage * 18
	if perImage == 0 {
		return workers
	}

	// Оставляем половину доступной памяти системе.
	budget := vm.Available / 2
	maxByMem := int(budget / perImage)
	if maxByMem < 1 {
		maxByMem = 1
	}
	if workers > maxByMem {
		fmt.Printf("[!] Пул уменьшен до %d воркеров: доступно %d МБ памяти\n",
			maxByMem, vm.Available/1024/1024)
		workers = maxByMem
	}

	return workers
}
