package pylint

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"

	"pylintd/pkg/domain"
)

var (
	// path:line:column: ID: text (symbol), the default --msg-template.
	messageRe = regexp.MustCompile(`^(.+?):(\d+):(\d+): ([A-Z]\d{4}): (.*?)(?: \(([a-z][a-z0-9-]*)\))?$`)
	scoreRe   = regexp.MustCompile(`rated at (-?\d+(?:\.\d+)?)/10(?: \(previous run: (-?\d+(?:\.\d+)?)/10)?`)
)

// Parse extracts messages and the score from pylint's text output. Lines that
// are neither messages nor the rating line are ignored.
func Parse(output string) *domain.Report {
	report := &domain.Report{Output: output, Messages: []domain.Message{}}

	sc := bufio.NewScanner(strings.NewReader(output))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")

		if m := messageRe.FindStringSubmatch(line); m != nil {
			lineNo, _ := strconv.Atoi(m[2])
			col, _ := strconv.Atoi(m[3])
			report.Messages = append(report.Messages, domain.Message{
				Path:     m[1],
				Line:     lineNo,
				Column:   col,
				ID:       m[4],
				Symbol:   m[6],
				Category: domain.CategoryFromID(m[4]),
				Text:     m[5],
			})

			continue
		}

		if m := scoreRe.FindStringSubmatch(line); m != nil {
			report.Score = parseFloat(m[1])
			report.PreviousScore = parseFloat(m[2])
		}
	}

	return report
}

func parseFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}

	return &f
}
