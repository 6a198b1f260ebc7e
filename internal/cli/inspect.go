package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/roboco-io/exam2hwpx/internal/hwpx"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <template.hwpx>",
	Short: "템플릿의 리소스와 스타일 슬롯 확인",
	Long: `템플릿 .hwpx 파일의 패키지 리소스 목록과, 변환기가 참조하는
스타일 슬롯(styleIDRef/paraPrIDRef/charPrIDRef)이 템플릿의 header.xml에
정의되어 있는지 확인합니다.

변환 자체는 스타일 슬롯 존재 여부를 검사하지 않으므로, 템플릿이 슬롯을
정의하지 않으면 결과 문서가 기본 스타일로 표시될 수 있습니다. 변환 전에
이 명령으로 템플릿을 점검하세요.

예시:
  exam2hwpx inspect template.hwpx`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	templatePath := args[0]

	data, err := os.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("템플릿 파일을 읽을 수 없습니다: %w", err)
	}

	switch hwpx.DetectFormat(data) {
	case hwpx.FormatHWP:
		return fmt.Errorf("HWP 5.x 바이너리 형식입니다. 한글에서 .hwpx 형식으로 저장 후 다시 시도하세요")
	case hwpx.FormatUnknown:
		return fmt.Errorf("HWPX(ZIP) 패키지가 아닙니다: %s", templatePath)
	}

	container, err := hwpx.OpenContainer(data)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "템플릿: %s\n\n", templatePath)

	fmt.Fprintln(out, "리소스:")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, path := range container.Paths() {
		payload, _ := container.Read(path)
		marker := ""
		if path == hwpx.SectionPath {
			marker = "← 본문 (변환 시 재작성)"
		}
		fmt.Fprintf(w, "  %s\t%d bytes\t%s\n", path, len(payload), marker)
	}
	w.Flush()

	if _, ok := container.Read(hwpx.SectionPath); !ok {
		fmt.Fprintf(out, "\n경고: %s 리소스가 없어 변환할 수 없습니다\n", hwpx.SectionPath)
		return nil
	}

	header, ok := container.Read(hwpx.HeaderPath)
	if !ok {
		fmt.Fprintf(out, "\n경고: %s 리소스가 없어 스타일을 확인할 수 없습니다\n", hwpx.HeaderPath)
		return nil
	}

	catalog, err := hwpx.ParseStyleCatalog(header)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "\n스타일 슬롯:")
	sw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(sw, "  역할\tstyle\tparaPr\tcharPr\t상태")
	for _, role := range hwpx.Roles() {
		p := hwpx.StyleFor(role)
		status := "✓ 정의됨"
		if !catalog.Defines(p) {
			status = "✗ 미정의"
		}
		fmt.Fprintf(sw, "  %s\t%d\t%d\t%d\t%s\n", role, p.StyleID, p.ParaPrID, p.CharPrID, status)
	}
	sw.Flush()

	return nil
}
