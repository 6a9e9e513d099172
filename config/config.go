package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging     LoggingConfig   `yaml:"logging"`
	Server      ServerConfig    `yaml:"server"`
	GeminiModel string          `yaml:"gemini_model"`
	Chat        ChatConfig      `yaml:"chat"`
	ChatQuota   ChatQuotaConfig `yaml:"chat_quota"`
	Mongo       MongoConfig     `yaml:"mongo"`
	Kafka       KafkaConfig     `yaml:"kafka"`
	CORS        CORSConfig      `yaml:"cors"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// ChatConfig 는 챗봇 엔진의 동작 파라미터를 정의한다.
type ChatConfig struct {
	// SessionTTLMinutes 를 넘겨 유휴 상태인 세션은 정리된다. 0 이하면 기본 30분.
	SessionTTLMinutes int `yaml:"session_ttl_minutes"`

	// GenerationTimeoutSeconds 는 생성형 호출 한 건의 제한 시간이다. 0 이하면 기본 12초.
	GenerationTimeoutSeconds int `yaml:"generation_timeout_seconds"`

	// HistoryLimit 은 생성형 경로에 전달하는 최근 대화 턴 수다. 0 이하면 기본 12.
	HistoryLimit int `yaml:"history_limit"`

	// ReferencePackagePrice 는 회수 기간(payback) 계산에 쓰는 기준 패키지 가격이다.
	// 0 이하면 기본 499.
	ReferencePackagePrice float64 `yaml:"reference_package_price"`
}

// ChatQuotaConfig 는 생성형 LLM 호출에 대한 속도/일일 한도를 정의한다.
type ChatQuotaConfig struct {
	// RequestsPerMinute 는 LLM 호출에 대한 분당 최대 요청 수이다.
	// 0 이하면 제한 없음으로 간주한다.
	RequestsPerMinute int `yaml:"requests_per_minute"`

	// RequestsPerDay 는 LLM 호출에 대한 일일 최대 요청 수이다.
	// 0 이하면 제한 없음으로 간주한다.
	RequestsPerDay int `yaml:"requests_per_day"`
}

type MongoConfig struct {
	URI    string `yaml:"uri"`
	DBName string `yaml:"db_name"`
}

type KafkaConfig struct {
	Enabled          bool   `yaml:"enabled"`
	BootstrapServers string `yaml:"bootstrap_servers"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}

	// 배포 환경에서는 민감한 값을 환경변수로 덮어쓴다.
	if v := os.Getenv("MONGO_URI"); v != "" {
		c.Mongo.URI = v
	}
	if v := os.Getenv("KAFKA_BOOTSTRAP_SERVERS"); v != "" {
		c.Kafka.BootstrapServers = v
	}

	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
