package app

import (
	"bufio"
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"gradebook/internal/config"
	"gradebook/internal/exporter"
	"gradebook/internal/files"
	"gradebook/internal/grading"
	"gradebook/internal/importer"
	"gradebook/internal/infrastructure"
	"gradebook/internal/report"
	"gradebook/internal/stats"
	"gradebook/internal/store"
)

// App runs the interactive gradebook session: a menu loop that collects
// records, analyzes them and renders the report, until the user exits.
type App struct {
	cfg      *config.Config
	paths    *config.Paths
	logger   *slog.Logger
	scanner  *bufio.Scanner
	renderer *report.Renderer

	manual     *importer.ManualReader
	fileImport *importer.FileImporter
	exporter   *exporter.ReportExporter
	discovery  *files.Discovery
	manager    *files.Manager
	summarizer *stats.Summarizer

	// state of the active collect/report pass
	mode      string
	sessionID string
	records   *store.Store
	result    *analysis
}

// New wires the interactive session. Input is read from in and all console
// output goes to out, so tests can script a whole session.
func New(cfg *config.Config, paths *config.Paths, logger *slog.Logger, in io.Reader, out io.Writer) *App {
	if logger == nil {
		logger = slog.Default()
	}
	scanner := bufio.NewScanner(in)

	return &App{
		cfg:        cfg,
		paths:      paths,
		logger:     logger,
		scanner:    scanner,
		renderer:   report.NewRenderer(out),
		manual:     importer.NewManualReader(scanner, out, logger),
		fileImport: importer.NewFileImporter(logger),
		exporter:   exporter.NewReportExporter(paths, logger),
		discovery:  files.NewDiscovery(paths.DataDir),
		manager:    files.NewManager(paths),
		summarizer: stats.NewSummarizer(logger),
	}
}

// Run drives the session state machine until the user exits or the input
// stream closes. The loop itself never fails; Run returns early only when
// the context is canceled.
func (a *App) Run(ctx context.Context) error {
	a.logger.InfoContext(ctx, "gradebook session started",
		slog.String("data_dir", a.paths.DataDir),
		slog.Int("pass_threshold", a.cfg.Grading.PassThreshold))

	for state := StateMenu; state != StateExit; {
		if err := ctx.Err(); err != nil {
			return err
		}
		state = a.step(ctx, state)
	}

	a.logger.InfoContext(ctx, "gradebook session finished")
	return nil
}

// step advances the state machine by one transition.
func (a *App) step(ctx context.Context, state State) State {
	ctx = a.sessionContext(ctx)

	switch state {
	case StateMenu:
		return a.stepMenu(ctx)
	case StateCollect:
		return a.stepCollect(ctx)
	case StateAnalyze:
		return a.stepAnalyze(ctx)
	case StateReport:
		return a.stepReport(ctx)
	default:
		a.logger.ErrorContext(ctx, "unknown session state", slog.String("state", string(state)))
		return StateExit
	}
}

// stepMenu shows the menu and reads the 1/2/3 choice. Anything else stays
// in the menu; a closed input stream leaves the session.
func (a *App) stepMenu(ctx context.Context) State {
	a.renderer.WelcomeMenu()
	a.renderer.ChoicePrompt()

	choice, ok := a.readLine()
	if !ok {
		a.logger.InfoContext(ctx, "input stream closed, leaving session")
		return StateExit
	}

	switch choice {
	case "1":
		a.mode = modeManual
		return StateCollect
	case "2":
		a.mode = modeFile
		return StateCollect
	case "3":
		a.renderer.Goodbye()
		a.logger.InfoContext(ctx, "user chose to exit")
		return StateExit
	default:
		a.renderer.InvalidChoice()
		a.logger.WarnContext(ctx, "invalid menu choice", slog.String("choice", choice))
		return StateMenu
	}
}

// stepCollect populates the record store for a fresh pass. Each pass gets
// its own session id so its log lines correlate. An empty store sends the
// session back to the menu.
func (a *App) stepCollect(ctx context.Context) State {
	a.sessionID = uuid.NewString()
	ctx = a.sessionContext(ctx)
	a.logger.InfoContext(ctx, "collecting records", slog.String("mode", a.mode))

	switch a.mode {
	case modeManual:
		a.renderer.ManualEntryIntro()
		a.records = a.manual.Collect(ctx)
	case modeFile:
		a.records = a.collectFromFile(ctx)
	}

	if a.records == nil || a.records.Len() == 0 {
		a.renderer.NoData()
		a.records = nil
		return StateMenu
	}
	return StateAnalyze
}

// collectFromFile prompts for a filename, resolves it against the data
// directory and imports it. Any failure yields an empty store; the session
// carries on either way.
func (a *App) collectFromFile(ctx context.Context) *store.Store {
	a.renderer.FileLoadIntro()

	if found, err := a.discovery.FindDataFiles("."); err == nil {
		names := make([]string, 0, len(found))
		for _, f := range found {
			names = append(names, f.Name)
		}
		a.renderer.AvailableFiles(names)
	}

	a.renderer.FilenamePrompt()
	filename, ok := a.readLine()
	if !ok {
		return store.New()
	}
	if filename == "" {
		a.renderer.FileNotFound(filename)
		return store.New()
	}

	path := a.manager.ResolveImportPath(filename)
	res, err := a.fileImport.LoadFile(ctx, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			a.renderer.FileNotFound(filename)
		} else {
			a.renderer.LoadError(err)
		}
		a.logger.WarnContext(ctx, "file import failed",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return store.New()
	}

	a.renderer.LoadedFrom(filename, res.Header)
	for _, row := range res.Skipped {
		a.renderer.SkippedRow(row.Fields)
	}
	return res.Store
}

// stepAnalyze computes the statistics, grades, distribution and pass/fail
// partition over the collected store. Always moves on to the report.
func (a *App) stepAnalyze(ctx context.Context) State {
	grades := grading.Assign(a.records)

	a.result = &analysis{
		summary:      a.summarizer.Summarize(ctx, a.records),
		grades:       grades,
		distribution: grading.Distribution(grades),
		passFail:     grading.PassFail(a.records, a.cfg.Grading.PassThreshold),
	}

	a.logger.InfoContext(ctx, "analysis pass complete",
		slog.Int("students", a.result.summary.Students),
		slog.Int("passed", len(a.result.passFail.Passed)),
		slog.Int("failed", len(a.result.passFail.Failed)))

	return StateReport
}

// stepReport renders every report block, offers the export and clears the
// pass. The next collection starts from an empty store.
func (a *App) stepReport(ctx context.Context) State {
	a.renderer.AnalysisComplete(a.result.summary.Students)
	a.renderer.Statistics(a.result.summary)
	a.renderer.Distribution(a.result.distribution)
	a.renderer.PassFail(a.result.passFail)
	a.renderer.GradeTable(a.records, a.result.grades)

	a.maybeExport(ctx)

	a.records = nil
	a.result = nil
	a.sessionID = ""
	return StateMenu
}

// maybeExport asks for confirmation and writes the report when the user
// answers yes. Export failures are reported and never end the session.
func (a *App) maybeExport(ctx context.Context) {
	a.renderer.SavePrompt()
	answer, ok := a.readLine()
	if !ok || !strings.EqualFold(answer, "y") {
		return
	}

	a.renderer.SaveFilenamePrompt()
	filename, ok := a.readLine()
	if !ok {
		return
	}

	var path string
	if filename == "" {
		// Enter falls back to the well-known report file
		path = a.paths.ReportCSV
		filename = filepath.Base(path)
	} else {
		filename = a.exporter.NormalizeFilename(filename)
		path = a.manager.ResolveReportPath(filename)
	}

	gradeReport := exporter.GradeReport{
		Records:      a.records,
		Grades:       a.result.grades,
		Summary:      a.result.summary,
		Distribution: a.result.distribution,
		PassFail:     a.result.passFail,
	}

	if err := a.exporter.Export(ctx, path, gradeReport); err != nil {
		a.renderer.SaveError(filename)
		a.logger.ErrorContext(ctx, "report export failed",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return
	}

	a.renderer.SaveSuccess(filename)
	a.logger.InfoContext(ctx, "report exported",
		slog.String("path", path),
		slog.Int("students", gradeReport.Records.Len()))
}

// readLine reads one trimmed input line. ok is false once the stream has
// closed.
func (a *App) readLine() (string, bool) {
	if !a.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.scanner.Text()), true
}

// sessionContext attaches the active pass id to the context so the log
// handler can stamp it on every line.
func (a *App) sessionContext(ctx context.Context) context.Context {
	if a.sessionID == "" {
		return ctx
	}
	return infrastructure.WithSessionID(ctx, a.sessionID)
}
