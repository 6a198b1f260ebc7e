// Package cli implements the exam2hwpx command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "exam2hwpx",
	Short: "기출문제 JSON을 HWPX 시험지로 변환",
	Long: `exam2hwpx는 기출문제 JSON을 HWPX 시험지로 변환합니다.

사용자가 업로드한 .hwpx 템플릿의 스타일/글꼴/페이지 설정을 그대로 보존하고,
문제 내용 문단만 템플릿의 section0.xml에 삽입합니다.

하위 명령:
  convert    문제 JSON 파일을 HWPX로 변환
  inspect    템플릿의 리소스와 스타일 슬롯 확인
  serve      HTTP 변환 서버 실행
  config     설정 관리
  providers  사용 가능한 LLM 프로바이더 목록`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "버전 정보 표시",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "exam2hwpx %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
