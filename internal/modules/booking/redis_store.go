// README: Redis-backed ledger store; allocation runs as a single Lua script.
package booking

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"railsim/internal/modules/pricing"
	"railsim/internal/types"
)

const sessionKeyPrefix = "railsim:session:"

// KEYS[1] seats hash, KEYS[2] waitlist hash. ARGV[1] class, ARGV[2] ttl seconds.
// Returns {status, position}: 1 confirmed, 0 waitlisted, -1 missing session, -2 unknown class.
var allocateScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  return {-1, 0}
end
local seats = tonumber(redis.call('HGET', KEYS[1], ARGV[1]))
if seats == nil then
  return {-2, 0}
end
local ttl = tonumber(ARGV[2])
local result
if seats > 0 then
  redis.call('HINCRBY', KEYS[1], ARGV[1], -1)
  result = {1, 0}
else
  local pos = redis.call('HINCRBY', KEYS[2], ARGV[1], 1)
  result = {0, pos}
end
if ttl > 0 then
  redis.call('EXPIRE', KEYS[1], ttl)
  redis.call('EXPIRE', KEYS[2], ttl)
end
return result
`)

type RedisStore struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{redis: client, ttl: ttl}
}

// ttlSeconds rounds up so a sub-second ttl still refreshes the keys.
func ttlSeconds(d time.Duration) int64 {
	if d <= 0 {
		return 0
	}
	return int64((d + time.Second - 1) / time.Second)
}

func seatsKey(id types.ID) string {
	return sessionKeyPrefix + string(id) + ":seats"
}

func waitlistKey(id types.ID) string {
	return sessionKeyPrefix + string(id) + ":waitlist"
}

func (s *RedisStore) Create(ctx context.Context, id types.ID, pool SeatPool) error {
	seats := map[string]any{}
	waiting := map[string]any{}
	for _, c := range pricing.Classes() {
		n := pool[c]
		if n < 0 {
			n = 0
		}
		seats[string(c)] = n
		waiting[string(c)] = 0
	}
	_, err := s.redis.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Del(ctx, seatsKey(id), waitlistKey(id))
		p.HSet(ctx, seatsKey(id), seats)
		p.HSet(ctx, waitlistKey(id), waiting)
		if s.ttl > 0 {
			p.Expire(ctx, seatsKey(id), s.ttl)
			p.Expire(ctx, waitlistKey(id), s.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("booking: create session %s: %w", id, err)
	}
	return nil
}

func (s *RedisStore) Allocate(ctx context.Context, id types.ID, class pricing.TravelClass) (Allocation, error) {
	res, err := allocateScript.Run(ctx, s.redis, []string{seatsKey(id), waitlistKey(id)}, string(class), ttlSeconds(s.ttl)).Int64Slice()
	if err != nil {
		return Allocation{}, fmt.Errorf("booking: allocate %s: %w", id, err)
	}
	if len(res) != 2 {
		return Allocation{}, fmt.Errorf("booking: allocate %s: unexpected reply %v", id, res)
	}
	switch res[0] {
	case 1:
		return Allocation{Status: StatusConfirmed}, nil
	case 0:
		return Allocation{Status: StatusWaitlisted, WaitlistPosition: int(res[1])}, nil
	case -1:
		return Allocation{}, ErrSessionNotFound
	default:
		return Allocation{}, pricing.ErrUnknownClass
	}
}

func (s *RedisStore) Counts(ctx context.Context, id types.ID) (Counts, error) {
	var seatsCmd, waitCmd *redis.MapStringStringCmd
	_, err := s.redis.Pipelined(ctx, func(p redis.Pipeliner) error {
		seatsCmd = p.HGetAll(ctx, seatsKey(id))
		waitCmd = p.HGetAll(ctx, waitlistKey(id))
		// Reads count as activity, same as the memory store.
		if s.ttl > 0 {
			p.Expire(ctx, seatsKey(id), s.ttl)
			p.Expire(ctx, waitlistKey(id), s.ttl)
		}
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return Counts{}, fmt.Errorf("booking: counts %s: %w", id, err)
	}
	seats := seatsCmd.Val()
	if len(seats) == 0 {
		return Counts{}, ErrSessionNotFound
	}
	c := Counts{
		Seats:    make(map[pricing.TravelClass]int, len(seats)),
		Waitlist: make(map[pricing.TravelClass]int, len(seats)),
	}
	for k, v := range seats {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Counts{}, fmt.Errorf("booking: counts %s: seats[%s]=%q: %w", id, k, v, err)
		}
		c.Seats[pricing.TravelClass(k)] = n
	}
	for k, v := range waitCmd.Val() {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Counts{}, fmt.Errorf("booking: counts %s: waitlist[%s]=%q: %w", id, k, v, err)
		}
		c.Waitlist[pricing.TravelClass(k)] = n
	}
	return c, nil
}

func (s *RedisStore) Delete(ctx context.Context, id types.ID) error {
	n, err := s.redis.Del(ctx, seatsKey(id), waitlistKey(id)).Result()
	if err != nil {
		return fmt.Errorf("booking: delete %s: %w", id, err)
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}
