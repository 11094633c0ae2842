package repository

import (
	"log/slog"
	"time"

	"github.com/haconeco/project-task-tracker/internal/domain"
)

// Option はストアの生成オプション。
type Option func(*options)

type options struct {
	logger *slog.Logger
	clock  func() time.Time
}

// WithLogger はログ出力先を指定する。
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithClock は現在時刻の取得関数を差し替える。テスト用。
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: slog.Default(), clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// collection は1つのJSONファイルを所有するメモリ上のコレクション。
// ファイル全体を読み込み、全体を書き戻す。
type collection[T any] struct {
	path   string
	kind   string
	items  []*T
	logger *slog.Logger
	now    func() time.Time

	decode func(data []byte) ([]*T, error)
}

func newCollection[T any](path, kind string, decode func([]byte) ([]*T, error), o options) collection[T] {
	return collection[T]{
		path:   path,
		kind:   kind,
		logger: o.logger.With("store", kind, "path", path),
		now:    o.clock,
		decode: decode,
	}
}

// load はファイルを読み込む。ファイルが無い場合は空のコレクションになる。
// 読み込みや解析に失敗した場合も空にリセットし、エラーを返す。
func (c *collection[T]) load() error {
	data, exists, err := readJSONFile(c.path)
	if !exists && err == nil {
		c.items = []*T{}
		c.logger.Info("data file not found, starting with empty collection")
		return nil
	}
	if err == nil {
		var items []*T
		items, err = c.decode(data)
		if err == nil {
			if items == nil {
				items = []*T{}
			}
			c.items = items
			c.logger.Info("loaded collection", "count", len(items))
			return nil
		}
	}

	c.items = []*T{}
	c.logger.Error("failed to load data file, resetting to empty collection", "error", err)
	return &domain.PersistenceError{Op: "load", Path: c.path, Err: err}
}

// save はコレクション全体をファイルへ書き込む。
func (c *collection[T]) save() error {
	items := c.items
	if items == nil {
		items = []*T{}
	}
	data, err := encodeJSON(items)
	if err == nil {
		err = writeFileAtomic(c.path, data)
	}
	if err != nil {
		c.logger.Error("failed to save data file", "error", err)
		return &domain.PersistenceError{Op: "save", Path: c.path, Err: err}
	}
	c.logger.Info("saved collection", "count", len(c.items))
	return nil
}

// appendAndSave は末尾に追加して保存する。保存に失敗した場合は追加を取り消す。
func (c *collection[T]) appendAndSave(item *T) error {
	c.items = append(c.items, item)
	if err := c.save(); err != nil {
		c.items = c.items[:len(c.items)-1]
		return err
	}
	return nil
}

// removeAndSave はkeepがfalseを返す要素を取り除いて保存する。
// 何も取り除かなかった場合は保存しない。保存に失敗した場合は元に戻す。
func (c *collection[T]) removeAndSave(keep func(i int, item *T) bool) (int, error) {
	prev := c.items
	kept := make([]*T, 0, len(prev))
	for i, item := range prev {
		if keep(i, item) {
			kept = append(kept, item)
		}
	}
	removed := len(prev) - len(kept)
	if removed == 0 {
		return 0, nil
	}

	c.items = kept
	if err := c.save(); err != nil {
		c.items = prev
		return 0, err
	}
	return removed, nil
}

// all はスライスの複製を返す。要素は共有される。
func (c *collection[T]) all() []*T {
	out := make([]*T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *collection[T]) at(index int) (*T, bool) {
	if index < 0 || index >= len(c.items) {
		return nil, false
	}
	return c.items[index], true
}

func (c *collection[T]) size() int {
	return len(c.items)
}
