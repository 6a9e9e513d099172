package quota

import (
	"context"
	"sync"
	"time"
)

// ChatQuotaLimiter 는 생성형 응답 경로의 LLM 호출에 대한 분당/일일 한도를 관리한다.
// API 인스턴스가 하나라는 전제를 두고 인메모리로 동작하며,
// 애플리케이션이 재시작되면 카운터가 초기화된다.
type ChatQuotaLimiter struct {
	mu sync.Mutex

	dailyLimit int
	usedToday  int
	dayKey     string

	interval time.Duration
	lastCall time.Time
}

// NewChatQuotaLimiter 는 분당/일일 요청 한도로 리미터를 생성한다.
// 값이 0 이하인 경우 해당 방향의 제한을 두지 않는다.
func NewChatQuotaLimiter(requestsPerMinute, requestsPerDay int) *ChatQuotaLimiter {
	if requestsPerDay < 0 {
		requestsPerDay = 0
	}
	if requestsPerMinute < 0 {
		requestsPerMinute = 0
	}

	var interval time.Duration
	if requestsPerMinute > 0 {
		interval = time.Minute / time.Duration(requestsPerMinute)
	}

	return &ChatQuotaLimiter{
		dailyLimit: requestsPerDay,
		interval:   interval,
	}
}

// WaitAndReserve 는 생성형 호출 전에 분당/일일 한도를 적용한다.
// - 일일 한도를 초과한 경우: (false, nil) 을 반환하고 호출자는 규칙 기반 경로로 내려가야 한다.
// - 컨텍스트 취소 등 시스템 예외 발생 시: (false, error) 를 반환한다.
func (l *ChatQuotaLimiter) WaitAndReserve(ctx context.Context) (bool, error) {
	for {
		l.mu.Lock()

		now := time.Now().UTC()
		todayKey := now.Format("2006-01-02")
		if l.dayKey != todayKey {
			l.dayKey = todayKey
			l.usedToday = 0
		}

		if l.dailyLimit > 0 && l.usedToday >= l.dailyLimit {
			// 일일 한도 소진: 이번 호출은 생성형 경로를 사용하지 않는다.
			l.mu.Unlock()
			return false, nil
		}

		var delay time.Duration
		if l.interval > 0 && !l.lastCall.IsZero() {
			nextAllowed := l.lastCall.Add(l.interval)
			delay = time.Until(nextAllowed)
		}

		if delay <= 0 {
			l.usedToday++
			l.lastCall = now
			l.mu.Unlock()
			return true, nil
		}

		// 잠시 대기해야 하는 경우: 락을 풀고 대기 후 다시 루프를 반복한다.
		l.mu.Unlock()
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
}
