package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ikkim/cosmos-backend/config"
	"github.com/ikkim/cosmos-backend/pkg/logger"
	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// ErrNotInitialized Init이 호출되지 않은 상태에서 쓰기 작업을 시도함
var ErrNotInitialized = errors.New("redis client not initialized")

// Init Redis 연결 초기화
func Init(cfg *config.RedisConfig) error {
	logger.Info("Initializing Redis connection", map[string]interface{}{
		"host": cfg.Host,
		"port": cfg.Port,
		"db":   cfg.DB,
	})

	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to connect to Redis", err, map[string]interface{}{
			"host": cfg.Host,
			"port": cfg.Port,
		})
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Redis connection established", nil)
	return nil
}

// GetClient Redis 클라이언트 인스턴스 반환
func GetClient() *redis.Client {
	return client
}

// Close Redis 연결 종료
func Close() error {
	if client != nil {
		logger.Info("Closing Redis connection", nil)
		return client.Close()
	}
	return nil
}

// BlacklistToken 로그아웃된 토큰을 블랙리스트에 등록
// expiry는 토큰의 남은 유효기간과 맞춘다 (만료 후에는 어차피 검증 실패)
func BlacklistToken(ctx context.Context, token string, expiry time.Duration) error {
	if client == nil {
		return ErrNotInitialized
	}

	key := fmt.Sprintf("blacklist:%s", token)
	if err := client.Set(ctx, key, "revoked", expiry).Err(); err != nil {
		logger.Error("Failed to blacklist token", err, nil)
		return err
	}
	return nil
}

// IsTokenBlacklisted 토큰 블랙리스트 여부 확인
func IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	// Redis 미연결 환경에서는 블랙리스트 확인을 건너뛴다
	if client == nil {
		return false, nil
	}

	key := fmt.Sprintf("blacklist:%s", token)
	val, err := client.Get(ctx, key).Result()

	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		logger.Error("Failed to check token blacklist", err, nil)
		return false, err
	}

	return val == "revoked", nil
}
