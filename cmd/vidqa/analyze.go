package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/vidqa/config"
	"github.com/bnema/vidqa/internal/domain"
	"github.com/bnema/vidqa/internal/infrastructure/logger"
	"github.com/bnema/vidqa/internal/service"
)

var (
	reportFormats []string
	outDir        string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [video file or URL]",
	Short: "Analyze one video and write its reports",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := *configFrom(cmd)
		cfg.Store = config.StoreMemory
		cfg.ReportFormats = nil

		a, err := newApp(&cfg)
		if err != nil {
			return err
		}
		defer func() { _ = a.close() }()

		jobID, err := submitSource(cmd, a, args[0])
		if err != nil {
			return err
		}

		events := a.events.Subscribe(jobID)
		done := make(chan struct{})
		go func() {
			defer close(done)
			for ev := range events {
				logger.Info.Printf("[%5.1f%%] %s: %s", ev.Job.Progress, ev.Job.Status, ev.Job.Message)
				if ev.Job.Status.IsTerminal() {
					return
				}
			}
		}()

		a.orch.Wait()
		a.events.Unsubscribe(jobID, events)
		<-done

		job, err := a.orch.Status(jobID)
		if err != nil {
			return err
		}
		if job.Status == domain.JobStatusFailed {
			return fmt.Errorf("analysis failed: %s", job.Error)
		}

		res, err := a.orch.Result(jobID)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: overall %.1f (%d frames, audio %.1f)\n",
			res.VideoName, res.OverallQualityScore, res.AnalyzedFrames, res.Summary.AudioQualityScore)

		if err := os.MkdirAll(outDir, 0o750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		base := strings.TrimSuffix(res.VideoName, filepath.Ext(res.VideoName))
		for _, format := range reportFormats {
			path, _, err := a.orch.Report(cmd.Context(), jobID, format)
			if err != nil {
				return err
			}
			dest := filepath.Join(outDir, base+"-report"+filepath.Ext(path))
			if err := copyFile(path, dest); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dest)
		}
		return nil
	},
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}
	return out.Close()
}

func init() {
	analyzeCmd.Flags().StringSliceVarP(&reportFormats, "format", "f", []string{"json"}, "report formats (json, pdf, xlsx, html)")
	analyzeCmd.Flags().StringVarP(&outDir, "out", "o", ".", "directory reports are written to")
}

// submitSource sends URLs through request validation. Local files named on
// the command line are trusted and analyzed in place.
func submitSource(cmd *cobra.Command, a *app, source string) (string, error) {
	if domain.IsRemote(source) {
		return a.orch.StartAnalysis(cmd.Context(), service.AnalysisRequest{VideoURL: source})
	}
	path, err := filepath.Abs(source)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", source, err)
	}
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("video file %s: %w", filepath.Base(path), domain.ErrNotFound)
	}
	return a.orch.Submit(cmd.Context(), path)
}
