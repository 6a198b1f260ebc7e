package cli

import (
	"fmt"

	"github.com/roboco-io/exam2hwpx/internal/config"
	"github.com/roboco-io/exam2hwpx/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "HTTP 변환 서버 실행",
	Long: `HTTP 변환 서버를 실행합니다.

엔드포인트:
  POST /convert
    요청: {"title": "...", "questions": [...], "template_base64": "..."}
    응답: {"success": true, "mode": "template", "filename": "...", "data": "<base64>", "size": n}

CORS 허용 출처는 설정 파일(server.cors_origins)로 관리합니다.

예시:
  exam2hwpx serve
  exam2hwpx serve --addr :9090`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "리스닝 주소 (기본: 설정 파일의 server.addr)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	loader, err := config.NewLoader()
	if err != nil {
		return fmt.Errorf("설정 로더 초기화 실패: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return fmt.Errorf("설정 로드 실패: %w", err)
	}

	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}

	return server.New(cfg).ListenAndServe()
}
