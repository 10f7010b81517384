package llm

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/utils"
)

const fence = "```"

var errNullPayload = errors.New("payload is null")

type fencedBlock struct {
	tag     string
	content string
}

// StripFences returns the payload of a Markdown fenced code block if the text
// has one, otherwise the text itself. The first block tagged json wins, then
// the first well-formed block of any tag. The result is whitespace-trimmed.
func StripFences(raw string) string {
	blocks := scanFences(raw)
	for _, b := range blocks {
		if strings.EqualFold(b.tag, "json") {
			return strings.TrimSpace(b.content)
		}
	}
	if len(blocks) > 0 {
		return strings.TrimSpace(blocks[0].content)
	}
	return strings.TrimSpace(raw)
}

// scanFences collects every closed fenced block in order. An opening fence
// without a matching closing fence ends the scan.
func scanFences(s string) []fencedBlock {
	var out []fencedBlock
	for {
		open := strings.Index(s, fence)
		if open < 0 {
			return out
		}
		rest := s[open+len(fence):]

		tagLen := 0
		for tagLen < len(rest) && isTagByte(rest[tagLen]) {
			tagLen++
		}
		tag := rest[:tagLen]
		body := rest[tagLen:]

		end := strings.Index(body, fence)
		if end < 0 {
			return out
		}
		out = append(out, fencedBlock{tag: tag, content: body[:end]})
		s = body[end+len(fence):]
	}
}

func isTagByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '-' || c == '_' || c == '+'
}

// DecodeJSON strips fences from raw and parses the payload into dst once.
// A parse failure is reported as CodeBadOutput carrying the parser error.
func DecodeJSON(raw string, dst any) error {
	payload := StripFences(raw)
	if payload == "null" {
		return utils.E(utils.CodeBadOutput, "llm.DecodeJSON", "AI returned an invalid data format. Please try again.", errNullPayload)
	}
	if err := json.Unmarshal([]byte(payload), dst); err != nil {
		return utils.E(utils.CodeBadOutput, "llm.DecodeJSON", "AI returned an invalid data format. Please try again.", err)
	}
	return nil
}
