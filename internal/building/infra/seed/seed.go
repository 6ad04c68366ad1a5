package seed

import (
	"GameAdmin/internal/building/app/model"
	"GameAdmin/internal/building/domain"
	"GameAdmin/modules/kit/logx"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Decode 读取 YAML 记录列表，未知字段直接报错。
func Decode(r io.Reader) ([]model.Record, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var records []model.Record
	if err := dec.Decode(&records); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decode building records: %w", err)
	}
	return records, nil
}

func Encode(w io.Writer, records []model.Record) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode building records: %w", err)
	}
	return enc.Close()
}

func Marshal(records []model.Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func LoadFile(path string) ([]model.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Importer 是 ConfigService 中种子导入用到的部分。
type Importer interface {
	List(ctx context.Context) ([]domain.Configuration, error)
	Import(ctx context.Context, records []model.Record, operator int) (*model.ImportResult, error)
}

// Run 仅在存储为空时导入种子文件，操作人记为 0；path 为空时跳过。
func Run(ctx context.Context, svc Importer, path string, log logx.Logger) error {
	if path == "" {
		return nil
	}
	if log == nil {
		log = logx.Nop()
	}
	existing, err := svc.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Info("skip seeding, storage not empty", zap.Int("count", len(existing)))
		return nil
	}
	records, err := LoadFile(path)
	if err != nil {
		return err
	}
	res, err := svc.Import(ctx, records, 0)
	if err != nil {
		return err
	}
	log.Info("seeded building configurations",
		zap.String("file", path),
		zap.Int("created", res.Created),
		zap.Int("updated", res.Updated),
	)
	return nil
}
