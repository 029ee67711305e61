package download

// DownloadError is a custom error type for download-related errors
type DownloadError string

// Error implements the error interface
func (e DownloadError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrEmptyURL          DownloadError = "url cannot be empty"
	ErrInvalidURL        DownloadError = "url must be an http or https link"
	ErrLinkExpired       DownloadError = "download link expired"
	ErrUnsupportedFormat DownloadError = "unsupported download format"
	ErrConversionFailed  DownloadError = "conversion failed"
	ErrFFmpegMissing     DownloadError = "ffmpeg is not installed"
	ErrFileTooLarge      DownloadError = "converted file exceeds the size limit"
	ErrNilConfig         DownloadError = "config cannot be nil"
	ErrNilRepository     DownloadError = "download token repository cannot be nil"
	ErrNilConverter      DownloadError = "converter cannot be nil"
	ErrNilClock          DownloadError = "clock cannot be nil"
	ErrNilUUIDGenerator  DownloadError = "UUID generator cannot be nil"
)
