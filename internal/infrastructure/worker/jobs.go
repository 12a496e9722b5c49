package worker

import (
	"context"
	"log/slog"
	"time"
)

// NewPolicyReloadJob はポリシーファイルの再読み込みジョブを作成します
// ポリシーはファイル配布で更新されるため、定期的に再読み込みして反映する
func NewPolicyReloadJob(reloadFn func() error) Job {
	return Job{
		Name:     "policy_reload",
		Interval: 5 * time.Minute,
		Fn: func(ctx context.Context) error {
			if err := reloadFn(); err != nil {
				return err
			}
			slog.Debug("policy reloaded")
			return nil
		},
	}
}

// NewCursorKeyWarmJob はカーソル署名キーの先読みジョブを作成します
// キーのローカルキャッシュを温めておき、リクエストパスでのRedisアクセスを減らす
func NewCursorKeyWarmJob(warmFn func(ctx context.Context) ([]byte, error)) Job {
	return Job{
		Name:       "cursor_key_warm",
		Interval:   30 * time.Second,
		RunAtStart: true,
		Fn: func(ctx context.Context) error {
			_, err := warmFn(ctx)
			return err
		},
	}
}

// NewHealthCheckJob はデータベース接続確認ジョブを作成します
func NewHealthCheckJob(checkFn func(ctx context.Context) error) Job {
	return Job{
		Name:     "health_check",
		Interval: 5 * time.Minute,
		Fn: func(ctx context.Context) error {
			if err := checkFn(ctx); err != nil {
				slog.Warn("health check failed", "error", err)
				return err
			}
			return nil
		},
	}
}
