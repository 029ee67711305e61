package download

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/KirkDiggler/sora/internal/common/logger"
	"github.com/KirkDiggler/sora/internal/models"
	"github.com/lrstanley/go-ytdlp"
	"go.uber.org/zap"
)

// printTemplate makes yt-dlp report the final file once post-processing is done
const printTemplate = "after_move:%(title)s\t%(filepath)s"

// YTDLPConfig holds configuration for the yt-dlp converter
type YTDLPConfig struct {
	// Proxy is passed to yt-dlp when set
	Proxy  string
	Logger *zap.Logger
}

// YTDLP converts URLs with the yt-dlp binary
type YTDLP struct {
	proxy  string
	logger *zap.Logger
}

// NewYTDLP creates a yt-dlp backed converter
func NewYTDLP(cfg *YTDLPConfig) *YTDLP {
	if cfg == nil {
		cfg = &YTDLPConfig{}
	}

	return &YTDLP{
		proxy:  cfg.Proxy,
		logger: logger.OrNop(cfg.Logger),
	}
}

// Convert downloads the URL into dir in the requested format
func (y *YTDLP) Convert(ctx context.Context, input *ConversionRequest) (*ConversionResult, error) {
	if input == nil || input.URL == "" {
		return nil, ErrEmptyURL
	}

	cmd, err := y.command(input)
	if err != nil {
		return nil, err
	}

	res, err := cmd.Run(ctx, input.URL)
	if err != nil {
		stderr := ""
		if res != nil {
			stderr = res.Stderr
		}
		if isFFmpegMissing(err.Error()) || isFFmpegMissing(stderr) {
			return nil, ErrFFmpegMissing
		}
		y.logger.Debug("yt-dlp failed", zap.String("stderr", stderr), zap.Error(err))
		return nil, fmt.Errorf("yt-dlp: %w", err)
	}

	title, path, err := parsePrinted(res.Stdout)
	if err != nil {
		return nil, err
	}

	return &ConversionResult{
		FilePath: path,
		Title:    title,
	}, nil
}

func (y *YTDLP) command(input *ConversionRequest) (*ytdlp.Command, error) {
	cmd := ytdlp.New().
		Quiet().
		NoWarnings().
		NoProgress().
		NoPlaylist().
		IgnoreConfig().
		NoSimulate().
		Output(outputTemplate(input)).
		Print(printTemplate)

	if y.proxy != "" {
		cmd.Proxy(y.proxy)
	}

	switch input.Format {
	case models.DownloadFormatMP3:
		cmd.Format("bestaudio/best").
			ExtractAudio().
			AudioFormat("mp3").
			AudioQuality("192K")
	case models.DownloadFormatMP4, models.DownloadFormatAVI:
		cmd.Format("bestvideo+bestaudio/best").
			MergeOutputFormat(string(input.Format))
	default:
		return nil, ErrUnsupportedFormat
	}

	return cmd, nil
}

// outputTemplate names the file after the title behind the job's token
func outputTemplate(input *ConversionRequest) string {
	name := "%(title)s.%(ext)s"
	if input.Token != "" {
		name = input.Token + "-" + name
	}
	return filepath.Join(input.Dir, name)
}

// parsePrinted reads the last "title<TAB>path" line yt-dlp printed
func parsePrinted(stdout string) (string, string, error) {
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		parts := strings.SplitN(strings.TrimSpace(lines[i]), "\t", 2)
		if len(parts) == 2 && parts[1] != "" {
			return parts[0], parts[1], nil
		}
	}
	return "", "", errors.New("yt-dlp did not report an output file")
}

func isFFmpegMissing(msg string) bool {
	msg = strings.ToLower(msg)
	if !strings.Contains(msg, "ffmpeg") && !strings.Contains(msg, "ffprobe") {
		return false
	}
	return strings.Contains(msg, "not found") || strings.Contains(msg, "not installed")
}
