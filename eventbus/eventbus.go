package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Publisher 인터페이스는 이벤트 발행의 추상화를 정의한다.
// 이 서비스는 발행만 하며, 구독은 다운스트림 워커들의 몫이다.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload any) error
	Close()
}

// Event는 Kafka 메시지의 페이로드로 사용되는 구조체입니다.
type Event struct {
	ID      string          `json:"id"`
	Payload json.RawMessage `json:"payload"`
}

// NewJSONEvent 생성: payload를 JSON으로 인코딩하여 Event를 구성합니다.
// id가 빈 문자열이면 고해상도 타임스탬프 기반의 ID를 생성합니다.
func NewJSONEvent(id string, payload any) (Event, error) {
	if id == "" {
		id = fmt.Sprintf("%d", time.Now().UnixNano())
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("payload marshal 실패: %w", err)
	}
	return Event{ID: id, Payload: b}, nil
}

// Nop 은 Kafka 가 구성되지 않은 환경에서 쓰는 무동작 Publisher 다.
type Nop struct{}

func (Nop) Publish(ctx context.Context, topic string, payload any) error { return nil }
func (Nop) Close()                                                       {}
