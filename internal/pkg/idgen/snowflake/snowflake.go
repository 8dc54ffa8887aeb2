package snowflake

/*
ID 结构组成（64位）
	1位 符号位：固定为 0
	41位 时间戳：毫秒
	10位 工作机器 ID
	12位 序列号
*/

import (
	"errors"
	"sync"
	"time"

	"github.com/sober-studio/medtrack/internal/pkg/idgen"
)

const (
	defaultEpoch        int64 = 1767225600000 // 2026-01-01
	defaultWorkerIDBits uint  = 10
	defaultSequenceBits uint  = 12
	defaultMaxBackoffMS int64 = 5
)

// ErrClockBackwards 时钟回拨超过容忍范围
var ErrClockBackwards = errors.New("snowflake: clock moved backwards")

var _ idgen.IDGenerator = (*Snowflake)(nil)

type Snowflake struct {
	mu    sync.Mutex
	nowTS int64
	seq   int64

	epoch        int64
	workerIDBits uint
	sequenceBits uint
	maxBackoffMS int64
	clock        func() int64

	workerID       int64
	maxSequence    int64
	workerIDShift  uint
	timestampShift uint
}

type Option func(*Snowflake)

func WithEpoch(epoch int64) Option {
	return func(s *Snowflake) { s.epoch = epoch }
}

func WithWorkerIDBits(bits uint) Option {
	return func(s *Snowflake) { s.workerIDBits = bits }
}

func WithSequenceBits(bits uint) Option {
	return func(s *Snowflake) { s.sequenceBits = bits }
}

func WithMaxBackoff(ms int64) Option {
	return func(s *Snowflake) { s.maxBackoffMS = ms }
}

// WithClock 毫秒时钟，测试用
func WithClock(clock func() int64) Option {
	return func(s *Snowflake) { s.clock = clock }
}

// NewSnowflake workerID 超出范围或位宽非法时 panic，属于启动期配置错误
func NewSnowflake(workerID int64, opts ...Option) *Snowflake {
	s := &Snowflake{
		workerID:     workerID,
		epoch:        defaultEpoch,
		workerIDBits: defaultWorkerIDBits,
		sequenceBits: defaultSequenceBits,
		maxBackoffMS: defaultMaxBackoffMS,
		clock:        func() int64 { return time.Now().UnixMilli() },
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.workerIDBits+s.sequenceBits > 22 {
		panic("snowflake: workerIDBits + sequenceBits must not exceed 22")
	}

	maxWorkerID := int64(-1 ^ (-1 << s.workerIDBits))
	s.maxSequence = -1 ^ (-1 << s.sequenceBits)
	s.workerIDShift = s.sequenceBits
	s.timestampShift = s.sequenceBits + s.workerIDBits

	if workerID < 0 || workerID > maxWorkerID {
		panic("snowflake: workerID out of range")
	}
	return s
}

func (s *Snowflake) NextID() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()

	if now < s.nowTS {
		offset := s.nowTS - now
		if offset > s.maxBackoffMS {
			return 0, ErrClockBackwards
		}
		time.Sleep(time.Duration(offset) * time.Millisecond)
		now = s.clock()
		if now < s.nowTS {
			return 0, ErrClockBackwards
		}
	}

	if now == s.nowTS {
		s.seq = (s.seq + 1) & s.maxSequence
		if s.seq == 0 {
			// 当前毫秒序列号耗尽，等待下一毫秒
			for now <= s.nowTS {
				now = s.clock()
			}
		}
	} else {
		s.seq = 0
	}

	s.nowTS = now

	return ((now - s.epoch) << s.timestampShift) |
		(s.workerID << s.workerIDShift) |
		s.seq, nil
}
