package handlers

import (
	"io"

	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/extract"
	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/utils"
	"github.com/gin-gonic/gin"
)

const formFileField = "file"

// readUpload loads the multipart "file" field into memory, capped at
// extract.MaxFileSize.
func readUpload(c *gin.Context, op string) (string, []byte, bool) {
	fh, err := c.FormFile(formFileField)
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "missing multipart field 'file'", err))
		return "", nil, false
	}
	if fh.Size <= 0 || fh.Size > extract.MaxFileSize {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "file must be between 1 byte and 10MB", nil))
		return "", nil, false
	}

	f, err := fh.Open()
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "failed to open upload", err))
		return "", nil, false
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, extract.MaxFileSize+1))
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "failed to read upload", err))
		return "", nil, false
	}
	if len(data) > extract.MaxFileSize {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "file must be between 1 byte and 10MB", nil))
		return "", nil, false
	}
	return fh.Filename, data, true
}
