package config

const (
	defaultWorkDir                = "~/.local/share/singsync/media"
	defaultLogDir                 = "~/.local/share/singsync/logs"
	defaultAPIBind                = "127.0.0.1:7581"
	defaultCatalogBaseURL         = "https://lrclib.net/api"
	defaultCatalogUserAgent       = "singsync/1.0"
	defaultCatalogTimeoutSeconds  = 10
	defaultDownloaderBinary       = "yt-dlp"
	defaultCaptionTimeoutSeconds  = 180
	defaultAudioTimeoutSeconds    = 240
	defaultTranscriptionBinary    = "whisper"
	defaultTranscriptionModel     = "small"
	defaultTranscribeTimeoutSecs  = 600
	defaultStorageBackend         = "files"
	defaultStorageSQLitePath      = "~/.local/share/singsync/results.db"
	defaultResolverCandidateLimit = 3
	defaultLogFormat              = "console"
	defaultLogLevel               = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			WorkDir: defaultWorkDir,
			LogDir:  defaultLogDir,
			APIBind: defaultAPIBind,
		},
		Catalog: Catalog{
			Enabled:        true,
			BaseURL:        defaultCatalogBaseURL,
			UserAgent:      defaultCatalogUserAgent,
			TimeoutSeconds: defaultCatalogTimeoutSeconds,
		},
		Downloader: Downloader{
			Binary:                defaultDownloaderBinary,
			CaptionTimeoutSeconds: defaultCaptionTimeoutSeconds,
			AudioTimeoutSeconds:   defaultAudioTimeoutSeconds,
		},
		Transcription: Transcription{
			Enabled:        true,
			Binary:         defaultTranscriptionBinary,
			Model:          defaultTranscriptionModel,
			TimeoutSeconds: defaultTranscribeTimeoutSecs,
		},
		Storage: Storage{
			Backend:    defaultStorageBackend,
			SQLitePath: defaultStorageSQLitePath,
		},
		Resolver: Resolver{
			CandidateLimit: defaultResolverCandidateLimit,
			LockMedia:      true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
