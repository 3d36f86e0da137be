package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"speechcoach/internal/coach"
	"speechcoach/models"
)

var (
	inputFormat string
	device      string
	chartOutput string
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record from the microphone, transcribe and analyze",
	RunE:  runRecord,
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Analyze a script from a file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAnalyze,
}

var historyCmd = &cobra.Command{
	Use:   "history <analysis-id>",
	Short: "Reload a past analysis by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistory,
}

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Chart your score history",
	RunE:  runProgress,
}

func init() {
	recordCmd.Flags().StringVar(&inputFormat, "input-format", "pulse", "ffmpeg input driver (pulse, alsa, avfoundation)")
	recordCmd.Flags().StringVar(&device, "device", "default", "capture device name")
	progressCmd.Flags().StringVarP(&chartOutput, "output", "o", "progress.png", "chart output path")

	rootCmd.AddCommand(recordCmd, analyzeCmd, historyCmd, progressCmd)
}

func newPipeline() (*coach.Pipeline, *coach.Session, coach.Notifier) {
	session := coach.NewSession()
	notifier := &coach.TerminalNotifier{Out: os.Stdout}
	pipe := coach.NewPipeline(coach.NewAPIClient(serverURL()), session, notifier)
	return pipe, session, notifier
}

func runRecord(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	pipe, session, notifier := newPipeline()

	source := &coach.FFmpegSource{InputFormat: inputFormat, Device: device}
	recorder := coach.NewRecorder(source, session, notifier)

	if err := recorder.Start(ctx); err != nil {
		return err
	}
	fmt.Println("Recording... press Enter to stop.")
	_, _ = bufio.NewReader(os.Stdin).ReadString('\n')

	blob, err := recorder.Stop()
	if err != nil {
		return err
	}
	log.WithField("bytes", len(blob)).Debug("Recording finalized")

	script, err := pipe.Transcribe(ctx, blob)
	if err != nil {
		return err
	}
	if script == "" {
		notifier.Warning("No transcription returned; run 'coach analyze' with your script file.")
		return nil
	}
	fmt.Printf("\nTranscription:\n  %s\n\n", script)

	result, err := pipe.Analyze(ctx, script)
	if err != nil {
		return err
	}
	coach.WriteReport(os.Stdout, coach.BuildReport(result))

	var list coach.HistoryList
	entry := list.Append(result, time.Now())
	if entry.Retrievable() {
		fmt.Printf("\nSaved as analysis %s\n", entry.AnalysisID)
	}
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	script, err := readScript(args)
	if err != nil {
		return err
	}

	pipe, _, _ := newPipeline()
	result, err := pipe.Analyze(cmd.Context(), script)
	if err != nil {
		return err
	}

	coach.WriteReport(os.Stdout, coach.BuildReport(result))
	if result.AnalysisID != "" {
		fmt.Printf("\nSaved as analysis %s\n", result.AnalysisID)
	}
	return nil
}

func readScript(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	pipe, _, _ := newPipeline()

	item, err := pipe.LoadHistory(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Script:\n  %s\n\n", item.Script)
	coach.WriteReport(os.Stdout, coach.BuildReport(&models.AnalysisResult{
		NervousnessScore: item.Scores.Nervousness,
		ConfidenceScore:  item.Scores.Confidence,
		ClarityScore:     item.Scores.Clarity,
		DetectedIssues:   item.Issues,
		ImprovedScript:   item.ImprovedScript,
		SpeakingTips:     item.SpeakingTips,
	}))
	return nil
}

func runProgress(cmd *cobra.Command, args []string) error {
	pipe, _, notifier := newPipeline()

	series, err := pipe.Progress(cmd.Context())
	if err != nil {
		return err
	}

	if series.Empty || len(series.Dates) == 0 {
		message := series.Message
		if message == "" {
			message = "No analysis history yet."
		}
		notifier.Info(message)
		return nil
	}

	f, err := os.Create(chartOutput)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := coach.RenderProgressChart(series, f); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%d analyses)\n", chartOutput, len(series.Dates))
	return nil
}
