package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/roboco-io/exam2hwpx/internal/config"
	"github.com/roboco-io/exam2hwpx/internal/hwpx"
	"github.com/roboco-io/exam2hwpx/internal/llm"
	"github.com/roboco-io/exam2hwpx/internal/question"
	"github.com/spf13/cobra"
)

var (
	convertTemplate string
	convertOutput   string
	convertTitle    string
	convertUseLLM   bool
	convertProvider string
	convertModel    string
	convertVerbose  bool
	convertQuiet    bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <questions.json>",
	Short: "문제 JSON 파일을 HWPX로 변환",
	Long: `문제 JSON 파일을 템플릿 기반으로 HWPX 시험지로 변환합니다.

JSON은 문제 배열 또는 {"questions": [...]} 형식을 지원하며, 각 문제는
number/source/text/answer/explanation 필드를 가집니다. 정답과 해설은
지시문 문단의 미주로 삽입됩니다.

--llm 플래그를 사용하면 정답/해설이 없는 문제에 대해 LLM으로
해설을 생성한 뒤 변환합니다.

환경 변수:
  EXAM2HWPX_LLM=true       LLM 해설 생성 활성화
  EXAM2HWPX_PROVIDER=xxx   LLM 프로바이더 (openai, anthropic, gemini)

예시:
  exam2hwpx convert questions.json -t template.hwpx
  exam2hwpx convert questions.json -t template.hwpx -o exam.hwpx
  exam2hwpx convert questions.json -t template.hwpx --llm --provider anthropic`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertTemplate, "template", "t", "", "템플릿 .hwpx 파일 경로 (필수)")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "출력 파일 경로 (기본: {제목}_{날짜}.hwpx)")
	convertCmd.Flags().StringVar(&convertTitle, "title", "", "시험지 제목")
	convertCmd.Flags().BoolVar(&convertUseLLM, "llm", false, "빠진 정답/해설을 LLM으로 생성")
	convertCmd.Flags().StringVar(&convertProvider, "provider", "", "LLM 프로바이더 (openai, anthropic, gemini)")
	convertCmd.Flags().StringVar(&convertModel, "model", "", "LLM 모델 이름")
	convertCmd.Flags().BoolVarP(&convertVerbose, "verbose", "v", false, "상세 출력")
	convertCmd.Flags().BoolVarP(&convertQuiet, "quiet", "q", false, "조용한 모드")
	convertCmd.MarkFlagRequired("template")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	questionsPath := args[0]

	data, err := os.ReadFile(questionsPath)
	if err != nil {
		return fmt.Errorf("문제 파일을 읽을 수 없습니다: %w", err)
	}
	records, err := question.DecodeRecords(data)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("변환할 문제가 없습니다: %s", questionsPath)
	}

	templateBytes, err := os.ReadFile(convertTemplate)
	if err != nil {
		return fmt.Errorf("템플릿 파일을 읽을 수 없습니다: %w", err)
	}

	loader, err := config.NewLoader()
	if err != nil {
		return fmt.Errorf("설정 로더 초기화 실패: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return fmt.Errorf("설정 로드 실패: %w", err)
	}

	if !convertQuiet && convertVerbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "문제 파일: %s (%d개 문제)\n", questionsPath, len(records))
		fmt.Fprintf(cmd.ErrOrStderr(), "템플릿: %s\n", convertTemplate)
	}

	if convertUseLLM || config.GetEnvBool("EXAM2HWPX_LLM") {
		if !convertQuiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "해설 생성 중...\n")
		}
		if err := annotateRecords(cmd, cfg, records); err != nil {
			return fmt.Errorf("해설 생성 실패: %w", err)
		}
	}

	title := convertTitle
	if title == "" {
		title = cfg.Output.Title
	}

	out, err := hwpx.Assemble(templateBytes, records, title)
	if err != nil {
		return fmt.Errorf("변환 실패: %w", err)
	}

	outputPath := convertOutput
	if outputPath == "" {
		outputPath = fmt.Sprintf("%s_%s.hwpx", title, time.Now().Format("2006-01-02"))
	}
	if err := os.WriteFile(outputPath, out, 0644); err != nil {
		return fmt.Errorf("파일 저장 실패: %w", err)
	}

	if !convertQuiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "변환 완료: %s (%d bytes)\n", outputPath, len(out))
	}
	return nil
}

// annotateRecords fills in missing answers/explanations in place.
func annotateRecords(cmd *cobra.Command, cfg *config.Config, records []question.Record) error {
	name := convertProvider
	if name == "" {
		name = config.GetEnvOrDefault("EXAM2HWPX_PROVIDER", cfg.DefaultProvider)
	}

	registry := buildRegistry(cfg, name, convertModel)
	provider, err := registry.Get(name)
	if err != nil {
		return err
	}
	if err := provider.Validate(); err != nil {
		return err
	}

	opts := llm.DefaultOptions()
	opts.Temperature = cfg.Annotate.Temperature
	if cfg.Annotate.Language != "" {
		opts.Language = cfg.Annotate.Language
	}
	if pc, ok := cfg.GetProvider(name); ok && pc.MaxTokens > 0 {
		opts.MaxTokens = pc.MaxTokens
	}

	annotated, usage, err := llm.AnnotateMissing(cmd.Context(), provider, records, opts)
	if err != nil {
		return err
	}

	if !convertQuiet && convertVerbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "해설 생성: %d개 문제, 토큰 %d (입력 %d / 출력 %d)\n",
			annotated, usage.TotalTokens, usage.InputTokens, usage.OutputTokens)
	}
	return nil
}

// buildRegistry registers every configured provider. modelOverride applies
// to the selected provider only.
func buildRegistry(cfg *config.Config, selected, modelOverride string) *llm.Registry {
	registry := llm.NewRegistry()

	for name, pc := range cfg.Providers {
		model := pc.Model
		if name == selected && modelOverride != "" {
			model = modelOverride
		}

		var p llm.Provider
		switch name {
		case "openai":
			p = llm.NewOpenAI(pc.APIKey, model)
		case "anthropic":
			p = llm.NewAnthropic(pc.APIKey, model)
		case "gemini":
			p = llm.NewGemini(pc.APIKey, model)
		default:
			continue
		}
		// 이름 충돌은 설정 키 중복뿐이므로 무시해도 안전하다.
		_ = registry.Register(p)
	}

	return registry
}
