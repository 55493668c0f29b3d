// Package jsonl 实现异步 JSONL 文件写入。
// 行情接收循环只做投递，JSON 编码与文件 I/O 在后台 goroutine 完成。
package jsonl

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"go.uber.org/multierr"
)

// ErrClosed 写入器已关闭
var ErrClosed = errors.New("jsonl: writer 已关闭")

type opType int

const (
	opWrite opType = iota
	opFlush
	opClose
)

type op struct {
	typ  opType
	val  any
	done chan error
}

// Stats 写入统计
type Stats struct {
	// Written 已编码写入的记录数
	Written int64 `json:"written"`
	// Dropped 因缓冲区满被丢弃的记录数（仅 TryWrite）
	Dropped int64 `json:"dropped"`
	// EncodeErrors 编码失败的记录数
	EncodeErrors int64 `json:"encode_errors"`
}

// Writer 异步 JSONL 写入器
type Writer struct {
	// path 输出文件路径
	path string
	// ch 操作通道
	ch chan op

	written      int64
	dropped      int64
	encodeErrors int64

	closeOnce sync.Once
	closeErr  error
	closed    int32

	// sendMu 保证关闭后不再向 ch 投递
	sendMu sync.RWMutex

	wg sync.WaitGroup
}

// NewWriter 创建 JSONL 写入器（追加模式）
// 参数 path: 输出文件路径，目录不存在时自动创建
// 参数 bufferSize: 投递缓冲区大小
func NewWriter(path string, bufferSize int) (*Writer, error) {
	if bufferSize <= 0 {
		bufferSize = 1000
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("创建输出目录失败: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("打开输出文件失败: %w", err)
	}

	w := &Writer{
		path: path,
		ch:   make(chan op, bufferSize),
	}

	w.wg.Add(1)
	go w.loop(f)

	return w, nil
}

// Path 输出文件路径
func (w *Writer) Path() string {
	return w.path
}

// Write 投递一条记录，缓冲区满时阻塞
func (w *Writer) Write(v any) error {
	if w == nil {
		return ErrClosed
	}
	w.sendMu.RLock()
	defer w.sendMu.RUnlock()
	if atomic.LoadInt32(&w.closed) == 1 {
		return ErrClosed
	}
	w.ch <- op{typ: opWrite, val: v}
	return nil
}

// TryWrite 投递一条记录，缓冲区满时丢弃并计数
// 返回 false 表示记录未被接受。用于不能阻塞的接收路径。
func (w *Writer) TryWrite(v any) bool {
	if w == nil {
		return false
	}
	w.sendMu.RLock()
	defer w.sendMu.RUnlock()
	if atomic.LoadInt32(&w.closed) == 1 {
		return false
	}
	select {
	case w.ch <- op{typ: opWrite, val: v}:
		return true
	default:
		atomic.AddInt64(&w.dropped, 1)
		return false
	}
}

// Flush 强制 flush 文件缓冲区
func (w *Writer) Flush() error {
	if w == nil {
		return nil
	}
	w.sendMu.RLock()
	defer w.sendMu.RUnlock()
	if atomic.LoadInt32(&w.closed) == 1 {
		return nil
	}
	done := make(chan error, 1)
	w.ch <- op{typ: opFlush, done: done}
	return <-done
}

// Close 关闭写入器（会先 flush），可重复调用
func (w *Writer) Close() error {
	if w == nil {
		return nil
	}
	w.closeOnce.Do(func() {
		w.sendMu.Lock()
		defer w.sendMu.Unlock()
		atomic.StoreInt32(&w.closed, 1)
		done := make(chan error, 1)
		w.ch <- op{typ: opClose, done: done}
		w.closeErr = <-done
		close(w.ch)
	})
	w.wg.Wait()
	return w.closeErr
}

// Stats 获取写入统计
func (w *Writer) Stats() Stats {
	return Stats{
		Written:      atomic.LoadInt64(&w.written),
		Dropped:      atomic.LoadInt64(&w.dropped),
		EncodeErrors: atomic.LoadInt64(&w.encodeErrors),
	}
}

func (w *Writer) loop(f *os.File) {
	defer w.wg.Done()

	bw := bufio.NewWriterSize(f, 1<<20)
	for req := range w.ch {
		switch req.typ {
		case opWrite:
			b, err := json.Marshal(req.val)
			if err != nil {
				atomic.AddInt64(&w.encodeErrors, 1)
				continue
			}
			b = append(b, '\n')
			if _, err := bw.Write(b); err != nil {
				continue
			}
			atomic.AddInt64(&w.written, 1)
		case opFlush:
			req.done <- bw.Flush()
		case opClose:
			req.done <- multierr.Append(bw.Flush(), f.Close())
			return
		}
	}
}
