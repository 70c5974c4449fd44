package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter é uma janela fixa por identidade, com estado no Redis — assim o
// limite vale para o conjunto de réplicas, não por processo.
type Limiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
}

func New(rdb *redis.Client, limit int, window time.Duration) *Limiter {
	return &Limiter{
		rdb:    rdb,
		limit:  limit,
		window: window,
	}
}

// Allow conta a tentativa e diz se ela cabe na janela corrente da chave.
// Erro de infraestrutura é devolvido junto com allow=true: indisponibilidade
// do Redis não pode derrubar reservas (o chamador loga e segue).
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := fmt.Sprintf("ratelimit:booking:%s", key)

	n, err := l.rdb.Incr(ctx, redisKey).Result()
	if err != nil {
		return true, err
	}

	if n == 1 {
		if err := l.rdb.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return true, err
		}
	}

	return n <= int64(l.limit), nil
}
