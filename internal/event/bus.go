package event

import (
	"DevSpace/internal/pkg/logger"
	"context"
	"hash/fnv"
	log "log/slog"
	"sync"
)

const (
	defaultWorkers    = 4
	defaultBufferSize = 256
)

// HandlerFunc 事件处理函数，错误由处理方自行消化
type HandlerFunc func(ctx context.Context, e Event)

type delivery struct {
	ctx   context.Context
	event Event
}

// Bus 进程内异步事件总线。Publish 立即返回，
// 订阅者在固定大小的 worker 池中执行。
// 同名事件固定路由到同一个 worker，保持发布顺序
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]HandlerFunc
	closed   bool

	chs  []chan delivery
	wg   sync.WaitGroup
	once sync.Once
}

func NewBus() *Bus {
	chs := make([]chan delivery, defaultWorkers)
	for i := range chs {
		chs[i] = make(chan delivery, defaultBufferSize)
	}
	return &Bus{
		handlers: make(map[string][]HandlerFunc),
		chs:      chs,
	}
}

// Subscribe 按事件名注册处理函数，必须在 Start 之前调用
func (s *Bus) Subscribe(name string, h HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[name] = append(s.handlers[name], h)
}

// Publish 投递事件后立即返回。缓冲满时丢弃并告警，
// 不阻塞调用方的请求路径。Close 之后的投递直接丢弃
func (s *Bus) Publish(ctx context.Context, e Event) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		log.WarnContext(ctx, "event bus closed, event dropped", "event", e.Name())
		return
	}

	d := delivery{ctx: detach(ctx), event: e}
	ch := s.chs[shard(e.Name(), len(s.chs))]
	select {
	case ch <- d:
	default:
		log.WarnContext(ctx, "event bus buffer full, event dropped", "event", e.Name())
	}
}

// Start 启动 worker 池
func (s *Bus) Start() {
	for _, ch := range s.chs {
		s.wg.Add(1)
		go s.work(ch)
	}
}

// Close 停止接收新事件并等待已入队事件处理完毕
func (s *Bus) Close() {
	s.once.Do(func() {
		// 写锁等到在途的 Publish 都退出后才关闭通道
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
		for _, ch := range s.chs {
			close(ch)
		}
	})
	s.wg.Wait()
}

func (s *Bus) work(ch <-chan delivery) {
	defer s.wg.Done()
	for d := range ch {
		s.dispatch(d)
	}
}

func shard(name string, n int) int {
	h := fnv.New32a()
	h.Write([]byte(name))
	return int(h.Sum32() % uint32(n))
}

func (s *Bus) dispatch(d delivery) {
	s.mu.RLock()
	hs := s.handlers[d.event.Name()]
	s.mu.RUnlock()

	for _, h := range hs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.ErrorContext(d.ctx, "event handler panic", "event", d.event.Name(), "panic", r)
				}
			}()
			h(d.ctx, d.event)
		}()
	}
}

// detach 脱离请求 context 的生命周期，只保留 trace_id
func detach(ctx context.Context) context.Context {
	if traceID, ok := ctx.Value(logger.TraceIDKey).(string); ok {
		return logger.NewTraceContext(traceID)
	}
	return context.Background()
}
