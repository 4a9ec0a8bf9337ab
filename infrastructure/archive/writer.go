// Package archive grava os relatórios renderizados em disco, um arquivo por domínio e período
package archive

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/vfg2006/weekly-rank-digest/internal/domain"
)

const filePrefix = "周报_"

type Writer interface {
	Write(reportDomain domain.ReportDomain, period, content string) (string, error)
}

type FileWriter struct {
	Dir string
}

func NewFileWriter(dir string) Writer {
	return &FileWriter{Dir: dir}
}

// FileName devolve o caminho <dir>/<domínio>/周报_<período>.md
func FileName(dir string, reportDomain domain.ReportDomain, period string) string {
	return filepath.Join(dir, string(reportDomain), filePrefix+sanitize(period)+".md")
}

// Write grava o conteúdo de forma atômica (arquivo temporário + rename) e devolve o caminho final
func (w *FileWriter) Write(reportDomain domain.ReportDomain, period, content string) (string, error) {
	if strings.TrimSpace(period) == "" {
		return "", errors.New("período vazio")
	}

	target := FileName(w.Dir, reportDomain, period)
	dir := filepath.Dir(target)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "erro ao criar diretório %s", dir)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-"+filePrefix+"*")
	if err != nil {
		return "", errors.Wrap(err, "erro ao criar arquivo temporário")
	}

	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		cleanup()
		return "", errors.Wrapf(err, "erro ao gravar %s", target)
	}

	if err := tmp.Close(); err != nil {
		cleanup()
		return "", errors.Wrapf(err, "erro ao fechar %s", tmpName)
	}

	if err := os.Chmod(tmpName, 0o644); err != nil {
		cleanup()
		return "", errors.Wrapf(err, "erro ao ajustar permissões de %s", tmpName)
	}

	if err := os.Rename(tmpName, target); err != nil {
		cleanup()
		return "", errors.Wrapf(err, "erro ao mover %s para %s", tmpName, target)
	}

	return target, nil
}

// sanitize evita que o período crie subdiretórios
func sanitize(period string) string {
	r := strings.NewReplacer("/", "-", `\`, "-", "..", "-")
	return r.Replace(strings.TrimSpace(period))
}
