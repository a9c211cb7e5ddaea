package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ppiankov/civcards/internal/model"
	"github.com/ppiankov/civcards/internal/pipeline"
	"github.com/spf13/cobra"
)

var classifySplit bool

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify [text...]",
	Short: "Classify bonus texts and match icons",
	Long: `Classify runs the bonus classifier and icon matcher on each argument, or
on each non-empty stdin line when no arguments are given, and prints the
resulting bonus records as JSON.

With --split the whole input is treated as one civilization help text and
split into a description and bonuses first.

Example:
  civcards classify "Кавалерия имеет +1 к атаке"
  echo "Крестьяне собирают еду быстрее" | civcards classify
  civcards classify --split < help.txt`,
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().BoolVar(&classifySplit, "split", false, "treat input as help text and split it into description and bonuses")
}

type splitOutput struct {
	Description string              `json:"description"`
	Bonuses     []model.BonusRecord `json:"bonuses"`
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	builder := pipeline.NewBonusBuilder(cfg)

	var out any
	if classifySplit {
		text := strings.Join(args, "\n")
		if len(args) == 0 {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			text = string(data)
		}
		desc, bonuses := builder.Split(text)
		out = splitOutput{Description: desc, Bonuses: bonuses}
	} else {
		texts := args
		if len(texts) == 0 {
			texts, err = readLines(cmd.InOrStdin())
			if err != nil {
				return err
			}
		}
		out = builder.Records(texts)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

// readLines returns the non-empty trimmed lines of r
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return lines, nil
}
