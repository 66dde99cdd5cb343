// README: Bench checks: environment, migration, booking scenarios, concurrency and throughput.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const (
	StatusPass = "PASS"
	StatusFail = "FAIL"
	StatusSkip = "SKIP"
)

type Runner struct {
	cfg   Config
	httpc *http.Client
	db    *pgxpool.Pool
	redis *redis.Client
}

type Result struct {
	Name    string
	Status  string
	Latency time.Duration
	Note    string
}

type TestCase struct {
	Name string
	Run  func(ctx context.Context, r *Runner) Result
}

func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:   cfg,
		httpc: &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	if r.cfg.DSN != "" {
		if db, err := pgxpool.New(ctx, r.cfg.DSN); err == nil {
			r.db = db
		}
	}
	if r.cfg.RedisAddr != "" {
		r.redis = redis.NewClient(&redis.Options{Addr: r.cfg.RedisAddr})
	}

	tests := r.cases()
	results := make([]Result, 0, len(tests))

	for _, tc := range tests {
		res := tc.Run(ctx, r)
		res.Name = tc.Name
		results = append(results, res)
		fmt.Printf("%-5s %s", res.Status, tc.Name)
		if res.Latency > 0 {
			fmt.Printf(" (%s)", res.Latency)
		}
		if res.Note != "" {
			fmt.Printf(" - %s", res.Note)
		}
		fmt.Println()
	}

	if r.db != nil {
		r.db.Close()
	}
	if r.redis != nil {
		_ = r.redis.Close()
	}

	return results
}

func (r *Runner) cases() []TestCase {
	return []TestCase{
		{Name: "Env: Postgres connect", Run: checkPostgres},
		{Name: "Env: Redis connect", Run: checkRedis},
		{Name: "Migration: apply (optional)", Run: applyMigration},
		{Name: "Migration: tables exist", Run: checkTables},
		{Name: "API: health", Run: func(ctx context.Context, r *Runner) Result {
			code, _, lat, err := r.call(ctx, http.MethodGet, "/health", nil)
			return expectStatus(code, lat, err, http.StatusOK)
		}},
		{Name: "Routes: Mumbai-Delhi is 1447 km", Run: func(ctx context.Context, r *Runner) Result {
			code, body, lat, err := r.call(ctx, http.MethodGet, "/api/routes/Mumbai/Delhi", nil)
			if res := expectStatus(code, lat, err, http.StatusOK); res.Status != StatusPass {
				return res
			}
			var d struct {
				DistanceKm int `json:"distance_km"`
			}
			_ = json.Unmarshal(body, &d)
			if d.DistanceKm != 1447 {
				return Result{Status: StatusFail, Latency: lat, Note: fmt.Sprintf("distance=%d", d.DistanceKm)}
			}
			return Result{Status: StatusPass, Latency: lat}
		}},
		{Name: "Fare: senior 3A quote", Run: func(ctx context.Context, r *Runner) Result {
			code, body, lat, err := r.call(ctx, http.MethodPost, "/api/fares/quote", map[string]any{
				"source": "Chennai", "destination": "Kolkata", "class": "3A", "age": 65,
			})
			if res := expectStatus(code, lat, err, http.StatusOK); res.Status != StatusPass {
				return res
			}
			var q struct {
				Display string `json:"display"`
			}
			_ = json.Unmarshal(body, &q)
			if q.Display != "₹ 1400.00" {
				return Result{Status: StatusFail, Latency: lat, Note: "display=" + q.Display}
			}
			return Result{Status: StatusPass, Latency: lat}
		}},
		{Name: "Booking: fourth 3A ticket is WL1", Run: bookingScenario},
		{Name: "Booking: same station -> 400", Run: func(ctx context.Context, r *Runner) Result {
			id, err := r.openSession(ctx)
			if err != nil {
				return Result{Status: StatusFail, Note: err.Error()}
			}
			defer r.closeSession(ctx, id)
			code, _, lat, err := r.call(ctx, http.MethodPost, "/api/sessions/"+id+"/bookings", map[string]any{
				"name": "bench", "age": 30, "source": "Delhi", "destination": "Delhi", "class": "SL",
			})
			return expectStatus(code, lat, err, http.StatusBadRequest)
		}},
		{Name: "Session: exit then 404", Run: func(ctx context.Context, r *Runner) Result {
			id, err := r.openSession(ctx)
			if err != nil {
				return Result{Status: StatusFail, Note: err.Error()}
			}
			if code, _, lat, err := r.call(ctx, http.MethodDelete, "/api/sessions/"+id, nil); code != http.StatusOK {
				return expectStatus(code, lat, err, http.StatusOK)
			}
			code, _, lat, err := r.call(ctx, http.MethodGet, "/api/sessions/"+id+"/availability", nil)
			return expectStatus(code, lat, err, http.StatusNotFound)
		}},
		{Name: "Tatkal: seats -> success, none -> failure", Run: func(ctx context.Context, r *Runner) Result {
			for seats, want := range map[int]string{2: "success", 0: "failure"} {
				code, body, lat, err := r.call(ctx, http.MethodPost, "/api/tatkal", map[string]any{"seats": seats})
				if res := expectStatus(code, lat, err, http.StatusOK); res.Status != StatusPass {
					return res
				}
				var out struct {
					Outcome string `json:"outcome"`
				}
				_ = json.Unmarshal(body, &out)
				if out.Outcome != want {
					return Result{Status: StatusFail, Note: fmt.Sprintf("seats=%d outcome=%s", seats, out.Outcome)}
				}
			}
			return Result{Status: StatusPass}
		}},
		{Name: "Concurrency: no lost seat updates", Run: concurrentBookings},
		{Name: "Perf: fare quote throughput", Run: func(ctx context.Context, r *Runner) Result {
			return perfLoad(ctx, r, "/api/fares/quote", map[string]any{
				"source": "Mumbai", "destination": "Kolkata", "class": "SL", "age": 40,
			})
		}},
	}
}

func checkPostgres(ctx context.Context, r *Runner) Result {
	if r.db == nil {
		return Result{Status: StatusSkip, Note: "db not configured"}
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := r.db.Ping(ctx); err != nil {
		return Result{Status: StatusFail, Note: err.Error()}
	}
	return Result{Status: StatusPass}
}

func checkRedis(ctx context.Context, r *Runner) Result {
	if r.redis == nil {
		return Result{Status: StatusSkip, Note: "redis not configured"}
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := r.redis.Ping(ctx).Err(); err != nil {
		return Result{Status: StatusFail, Note: err.Error()}
	}
	return Result{Status: StatusPass}
}

func applyMigration(ctx context.Context, r *Runner) Result {
	if !r.cfg.ApplyMigration {
		return Result{Status: StatusSkip, Note: "apply-migration=false"}
	}
	if r.db == nil {
		return Result{Status: StatusFail, Note: "db not configured"}
	}
	sql, err := os.ReadFile(r.cfg.MigrationPath)
	if err != nil {
		return Result{Status: StatusFail, Note: err.Error()}
	}
	for _, s := range splitSQL(string(sql)) {
		if _, err := r.db.Exec(ctx, s); err != nil {
			return Result{Status: StatusFail, Note: err.Error()}
		}
	}
	return Result{Status: StatusPass}
}

func checkTables(ctx context.Context, r *Runner) Result {
	if r.db == nil {
		return Result{Status: StatusSkip, Note: "db not configured"}
	}
	tables, err := extractTables(r.cfg.MigrationPath)
	if err != nil {
		return Result{Status: StatusFail, Note: err.Error()}
	}
	for _, t := range tables {
		var exists bool
		err := r.db.QueryRow(ctx,
			"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name=$1)",
			t,
		).Scan(&exists)
		if err != nil {
			return Result{Status: StatusFail, Note: err.Error()}
		}
		if !exists {
			return Result{Status: StatusFail, Note: "missing table: " + t}
		}
	}
	return Result{Status: StatusPass}
}

func bookingScenario(ctx context.Context, r *Runner) Result {
	id, err := r.openSession(ctx)
	if err != nil {
		return Result{Status: StatusFail, Note: err.Error()}
	}
	defer r.closeSession(ctx, id)

	start := time.Now()
	var labels []string
	for i := 0; i < 4; i++ {
		code, body, _, err := r.call(ctx, http.MethodPost, "/api/sessions/"+id+"/bookings", map[string]any{
			"name": "bench", "age": 30, "source": "Mumbai", "destination": "Delhi", "class": "3A",
		})
		if err != nil || code != http.StatusCreated {
			return Result{Status: StatusFail, Note: fmt.Sprintf("book #%d status=%d err=%v", i+1, code, err)}
		}
		var out struct {
			Label string `json:"label"`
		}
		_ = json.Unmarshal(body, &out)
		labels = append(labels, out.Label)
	}
	if strings.Join(labels, ",") != "CNF,CNF,CNF,WL1" {
		return Result{Status: StatusFail, Note: "labels=" + strings.Join(labels, ",")}
	}
	return Result{Status: StatusPass, Latency: time.Since(start)}
}

// concurrentBookings fires Concurrency SL bookings at one session and expects
// exactly the pool size confirmed with a contiguous waitlist behind it.
func concurrentBookings(ctx context.Context, r *Runner) Result {
	id, err := r.openSession(ctx)
	if err != nil {
		return Result{Status: StatusFail, Note: err.Error()}
	}
	defer r.closeSession(ctx, id)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		confirmed int
		waiting   int
		failed    int
	)
	for i := 0; i < r.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code, body, _, err := r.call(ctx, http.MethodPost, "/api/sessions/"+id+"/bookings", map[string]any{
				"name": "bench", "age": 30, "source": "Chennai", "destination": "Delhi", "class": "SL",
			})
			mu.Lock()
			defer mu.Unlock()
			if err != nil || code != http.StatusCreated {
				failed++
				return
			}
			var out struct {
				Label string `json:"label"`
			}
			_ = json.Unmarshal(body, &out)
			if out.Label == "CNF" {
				confirmed++
			} else {
				waiting++
			}
		}()
	}
	wg.Wait()

	code, body, _, err := r.call(ctx, http.MethodGet, "/api/sessions/"+id+"/availability", nil)
	if err != nil || code != http.StatusOK {
		return Result{Status: StatusFail, Note: fmt.Sprintf("availability status=%d err=%v", code, err)}
	}
	var avail struct {
		Classes []struct {
			Class    string `json:"class"`
			Seats    int    `json:"seats"`
			Waitlist int    `json:"waitlist"`
		} `json:"classes"`
	}
	_ = json.Unmarshal(body, &avail)
	for _, c := range avail.Classes {
		if c.Class != "SL" {
			continue
		}
		if failed > 0 || c.Waitlist != waiting || (c.Seats > 0 && waiting > 0) {
			return Result{Status: StatusFail, Note: fmt.Sprintf("cnf=%d wl=%d failed=%d seats_left=%d waitlist=%d", confirmed, waiting, failed, c.Seats, c.Waitlist)}
		}
	}
	return Result{Status: StatusPass, Note: fmt.Sprintf("cnf=%d wl=%d", confirmed, waiting)}
}

func perfLoad(ctx context.Context, r *Runner, path string, payload any) Result {
	end := time.Now().Add(r.cfg.Duration)
	var count int64
	var errCount int64
	var mu sync.Mutex
	wg := sync.WaitGroup{}

	for i := 0; i < r.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(end) && ctx.Err() == nil {
				code, _, _, err := r.call(ctx, http.MethodPost, path, payload)
				mu.Lock()
				if err != nil || code >= 500 {
					errCount++
				} else {
					count++
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if count == 0 {
		return Result{Status: StatusFail, Note: "no requests completed"}
	}
	rps := float64(count) / r.cfg.Duration.Seconds()
	return Result{Status: StatusPass, Note: fmt.Sprintf("rps=%.1f errors=%d", rps, errCount)}
}

func (r *Runner) call(ctx context.Context, method, path string, body any) (int, []byte, time.Duration, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, nil, 0, err
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, r.cfg.BaseURL+path, reader)
	if err != nil {
		return 0, nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	start := time.Now()
	resp, err := r.httpc.Do(req)
	if err != nil {
		return 0, nil, 0, err
	}
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	return resp.StatusCode, out, time.Since(start), err
}

func (r *Runner) openSession(ctx context.Context) (string, error) {
	code, body, _, err := r.call(ctx, http.MethodPost, "/api/sessions", nil)
	if err != nil {
		return "", err
	}
	if code != http.StatusCreated {
		return "", fmt.Errorf("open session: status=%d", code)
	}
	var sess struct {
		ID string `json:"session_id"`
	}
	if err := json.Unmarshal(body, &sess); err != nil {
		return "", err
	}
	return sess.ID, nil
}

func (r *Runner) closeSession(ctx context.Context, id string) {
	_, _, _, _ = r.call(ctx, http.MethodDelete, "/api/sessions/"+id, nil)
}

func expectStatus(code int, latency time.Duration, err error, want int) Result {
	if err != nil {
		return Result{Status: StatusFail, Note: err.Error()}
	}
	if code != want {
		return Result{Status: StatusFail, Latency: latency, Note: fmt.Sprintf("status=%d want=%d", code, want)}
	}
	return Result{Status: StatusPass, Latency: latency, Note: fmt.Sprintf("status=%d", code)}
}

func extractTables(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	re := regexp.MustCompile(`(?i)create\s+table\s+if\s+not\s+exists\s+([a-zA-Z0-9_]+)`)
	matches := re.FindAllStringSubmatch(string(b), -1)
	tables := make([]string, 0, len(matches))
	for _, m := range matches {
		tables = append(tables, m[1])
	}
	return tables, nil
}

func splitSQL(sql string) []string {
	lines := strings.Split(sql, "\n")
	filtered := make([]string, 0, len(lines))
	for _, line := range lines {
		l := strings.TrimSpace(line)
		if strings.HasPrefix(l, "--") || l == "" {
			continue
		}
		filtered = append(filtered, line)
	}
	parts := strings.Split(strings.Join(filtered, "\n"), ";")
	stmts := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}
