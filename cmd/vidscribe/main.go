package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/handiism/vidscribe/internal/audio"
	"github.com/handiism/vidscribe/internal/backend"
	"github.com/handiism/vidscribe/internal/config"
	"github.com/handiism/vidscribe/internal/dispatch"
	vhttp "github.com/handiism/vidscribe/internal/http"
	ioutils "github.com/handiism/vidscribe/internal/io"
	"github.com/handiism/vidscribe/internal/model"
	"github.com/handiism/vidscribe/internal/view"
)

func main() {
	// Command line flags
	var (
		urlsFlag       = flag.String("url", "", "Video URL(s) (comma-separated or newline-separated)")
		configFlag     = flag.String("config", "", "Path to config file")
		baseURLFlag    = flag.String("base-url", "", "Backend base URL (overrides config)")
		infoFlag       = flag.Bool("info", false, "Show video info and available formats")
		formatFlag     = flag.String("format", "", "Format ID to download")
		subtitleFlag   = flag.Bool("subtitle", false, "Download subtitles")
		legacyFlag     = flag.Bool("legacy", false, "Send bare download requests without options")
		transcribeFlag = flag.String("transcribe", "", "Audio or video file to upload for transcription")
		thumbnailFlag  = flag.String("thumbnail", "", "Directory to save thumbnails to (with -info)")
		verboseFlag    = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Parse()

	urls := splitURLs(*urlsFlag)
	if len(urls) == 0 && flag.NArg() > 0 {
		urls = splitURLs(strings.Join(flag.Args(), ","))
	}

	if len(urls) == 0 && *transcribeFlag == "" {
		fmt.Println("vidscribe - Download and transcribe videos through a vidscribe backend")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  vidscribe -url <URL> -info")
		fmt.Println("  vidscribe -url <URL> -format <ID> [-subtitle]")
		fmt.Println("  vidscribe -transcribe <FILE>")
		fmt.Println()
		fmt.Println("For interactive mode, use: vidscribe-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load config
	config.LoadDotEnv()
	configPath := *configFlag
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	settings, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	settings.ApplyEnv()

	// Apply flags
	if *baseURLFlag != "" {
		settings.BaseURL = *baseURLFlag
	}
	if *legacyFlag {
		settings.DownloadVariant = model.VariantLegacy.String()
	}
	if *verboseFlag {
		settings.Verbose = true
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	client := vhttp.NewClient(settings.BaseURL, settings.RequestTimeout())
	page := view.NewMemory(settings.Catalog().VideoInfoButton, nil)

	dispatcher := dispatch.New(settings, backend.New(client), page, func(n dispatch.Notice) {
		if n.Level == dispatch.LevelVerbose && !settings.Verbose {
			return
		}
		fmt.Println(prefixFor(n.Level) + n.Message)
	})
	if settings.Verbose {
		dispatcher.SetLogger(log.New(os.Stderr, "vidscribe: ", log.LstdFlags))
	}

	fmt.Println("🎬 vidscribe")
	fmt.Println("   Backend: " + client.BaseURL())
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println()

	var ok bool
	switch {
	case *transcribeFlag != "":
		ok = runTranscribe(ctx, dispatcher, *transcribeFlag)
	case *infoFlag:
		ok = runInfo(ctx, dispatcher, client, urls, *thumbnailFlag)
	default:
		ok = runDownload(ctx, dispatcher, urls, *formatFlag, *subtitleFlag)
	}

	if ctx.Err() != nil {
		fmt.Println("\nCancelled.")
		os.Exit(130)
	}
	if !ok {
		os.Exit(1)
	}
}

func runInfo(ctx context.Context, d *dispatch.Dispatcher, client *vhttp.Client, urls []string, thumbDir string) bool {
	images := ioutils.NewImageService()
	ok := true

	for _, result := range d.FetchVideoInfoAll(ctx, urls) {
		if !result.Outcome.OK() {
			ok = false
			continue
		}

		info := result.Info
		fmt.Println("📺 " + info.Title)
		fmt.Println("   " + result.URL)
		if info.HasThumbnail() {
			fmt.Println("   🖼  " + info.ThumbnailURL)
		}
		for _, f := range info.Formats {
			fmt.Printf("   %-8s %s\n", f.FormatID, f.Label())
		}
		if len(info.Formats) == 0 {
			fmt.Println("   (no formats)")
		}

		if thumbDir != "" && info.HasThumbnail() {
			path, err := saveThumbnail(ctx, client, images, info, thumbDir)
			if err != nil {
				fmt.Fprintf(os.Stderr, "⚠️  Thumbnail for %s: %v\n", result.URL, err)
			} else {
				fmt.Println("   ✅ Saved " + path)
			}
		}
		fmt.Println()
	}

	return ok
}

func saveThumbnail(ctx context.Context, client *vhttp.Client, images *ioutils.ImageService, info *model.VideoInfo, dir string) (string, error) {
	data, err := client.Get(ctx, info.ThumbnailURL)
	if err != nil {
		return "", err
	}

	jpeg, err := images.ResizeImage(ctx, data, 1280, 1280)
	if err != nil {
		return "", err
	}

	name := model.SanitizeFileName(info.Title)
	if name == "" {
		name = "thumbnail"
	}
	path := filepath.Join(dir, name+".jpg")

	return path, ioutils.WriteFile(ctx, path, jpeg)
}

func runDownload(ctx context.Context, d *dispatch.Dispatcher, urls []string, formatID string, subtitle bool) bool {
	ok := true

	for _, url := range urls {
		outcome := d.SubmitDownload(ctx, model.DownloadRequest{
			SourceURL:       url,
			FormatID:        formatID,
			IncludeSubtitle: subtitle,
			Variant:         d.Variant(),
		})
		printOutcome(url, outcome)
		ok = ok && outcome.OK()
	}

	return ok
}

func runTranscribe(ctx context.Context, d *dispatch.Dispatcher, path string) bool {
	upload, err := ioutils.OpenUpload(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		return false
	}

	fmt.Println("🎧 " + audio.Describe(path))

	lastPercent := -1
	d.SetUploadProgress(func(sent, total int64) {
		if total <= 0 {
			return
		}
		percent := int(sent * 100 / total)
		if percent != lastPercent {
			lastPercent = percent
			fmt.Printf("\r   Uploading... %3d%%", percent)
		}
	})

	outcome := d.SubmitTranscription(ctx, upload)
	if lastPercent >= 0 {
		fmt.Println()
	}
	printOutcome(upload.FileName(), outcome)

	return outcome.OK()
}

func printOutcome(subject string, outcome model.Outcome) {
	level := dispatch.LevelSuccess
	if !outcome.OK() {
		level = dispatch.LevelError
	}
	fmt.Println(prefixFor(level) + subject + ": " + outcome.Message)
}

func prefixFor(level dispatch.NoticeLevel) string {
	switch level {
	case dispatch.LevelError:
		return "❌ "
	case dispatch.LevelWarning:
		return "⚠️  "
	case dispatch.LevelSuccess:
		return "✅ "
	case dispatch.LevelInfo:
		return "ℹ️  "
	default:
		return "   "
	}
}

// splitURLs splits a comma or newline separated list.
func splitURLs(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})

	var urls []string
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			urls = append(urls, f)
		}
	}
	return urls
}
