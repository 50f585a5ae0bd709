// Package installer runs the bootstrap sequence: validate the host,
// install prerequisites, resolve release versions, collect the
// administrator's input, and persist everything the panel install
// scripts consume.
package installer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/vantagepanel/bootstrap/internal/config"
	"github.com/vantagepanel/bootstrap/internal/logger"
	"github.com/vantagepanel/bootstrap/internal/osinfo"
	"github.com/vantagepanel/bootstrap/internal/pkgmgr"
	"github.com/vantagepanel/bootstrap/internal/prompt"
	"github.com/vantagepanel/bootstrap/internal/random"
	"github.com/vantagepanel/bootstrap/internal/release"
	"github.com/vantagepanel/bootstrap/internal/system"
	"github.com/vantagepanel/bootstrap/internal/ui"
)

// prereqPackages is the pre-formatted prerequisite list; it is split
// with shell word rules before being handed to the package manager.
const prereqPackages = "curl wget tar unzip"

const generatedPasswordLength = 16

// scriptsArchivePath is where the deploy-scripts archive is cached
// for the install scripts that run after bootstrap.
const scriptsArchivePath = "/tmp/vantagepanel-scripts.tar.gz"

// Options carries the CLI flags that alter the bootstrap.
type Options struct {
	// Quiet passes the package manager's quiet flags through.
	Quiet bool
}

// Bootstrap holds the collaborators of one bootstrap run. Every
// field is injectable; New fills in production defaults.
type Bootstrap struct {
	Printer   *ui.Printer
	Detector  *osinfo.Detector
	Releases  *release.Client
	Collector *prompt.Collector
	Store     *config.Store
	ConfigDir string
	Options   Options

	// The remaining collaborators are swapped out in tests.
	selectManager func(osinfo.Info, bool) (pkgmgr.Manager, error)
	chooseSetup   func() (*tuiResult, error)
	publicIP      func() string
	download      func(ctx context.Context, url, dest string) error
}

// New returns a Bootstrap wired to the real host.
func New(opts Options) *Bootstrap {
	return &Bootstrap{
		Printer:       ui.Default(),
		Detector:      &osinfo.Detector{},
		Releases:      release.NewClient(),
		Collector:     prompt.New(),
		Store:         config.DefaultStore(),
		ConfigDir:     config.Dir,
		Options:       opts,
		selectManager: pkgmgr.For,
		chooseSetup:   runTUI,
		publicIP:      detectPublicIP,
		download:      system.Download,
	}
}

// Run executes the whole sequence. Any error is fatal to the
// bootstrap; the caller exits non-zero.
func (b *Bootstrap) Run(ctx context.Context) error {
	info, err := b.checkHost()
	if err != nil {
		return err
	}

	choices, err := b.chooseSetup()
	if err != nil {
		return err
	}
	if choices == nil {
		b.Printer.Info("Bootstrap cancelled.")
		return nil
	}

	cfg := config.Default()
	cfg.Channel = choices.channel
	cfg.Branch = branchForChannel(choices.channel)
	cfg.Components = choices.components
	cfg.PanelPort = choices.panelPort
	cfg.OSName = info.ID
	cfg.OSVersion = info.Version
	cfg.OSMajor = info.VersionMajor
	cfg.OSArch = info.Arch

	if err := b.prepareHost(ctx, info); err != nil {
		return err
	}
	if err := b.resolveVersions(ctx, cfg); err != nil {
		return err
	}

	generated, err := b.collectAdmin(cfg)
	if err != nil {
		return err
	}

	if err := b.persist(cfg); err != nil {
		return err
	}

	// Prefetch the deploy scripts so the next stage works offline.
	// Best effort: the install scripts re-download on a miss.
	if err := b.download(ctx, cfg.ScriptsURL, scriptsArchivePath); err != nil {
		b.Printer.Warn("could not prefetch deploy scripts: %v", err)
		logger.Logger().Warnf("prefetch %s: %v", cfg.ScriptsURL, err)
	}

	b.printComplete(cfg, generated)
	return nil
}

// Check runs detection and the support gate without touching the
// host; it backs the `check` subcommand.
func (b *Bootstrap) Check() error {
	if _, err := b.checkHost(); err != nil {
		return err
	}
	if system.HasCommand("curl") || system.HasCommand("wget") {
		b.Printer.Success("Download tool present")
	} else {
		b.Printer.Warn("Neither curl nor wget found; bootstrap will install curl")
	}
	return nil
}

func (b *Bootstrap) checkHost() (osinfo.Info, error) {
	info := b.Detector.Detect()
	b.Printer.Info("Detected OS: %s", info)

	if err := osinfo.CheckSupport(info); err != nil {
		b.Printer.Error("%s %s is not supported", info.ID, info.Version)
		return info, Reported(err)
	}
	b.Printer.Success("%s %s is supported", info.ID, info.VersionMajor)
	return info, nil
}

type reportedError struct{ err error }

func (e reportedError) Error() string { return e.err.Error() }

func (e reportedError) Unwrap() error { return e.err }

// Reported wraps an error that was already printed to the user, so
// the CLI layer maps it to an exit code without repeating it.
func Reported(err error) error { return reportedError{err: err} }

// IsReported reports whether err was already printed to the user.
func IsReported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}

func (b *Bootstrap) prepareHost(ctx context.Context, info osinfo.Info) error {
	mgr, err := b.selectManager(info, b.Options.Quiet)
	if err != nil {
		return err
	}
	logger.Logger().Infof("using package manager %s", mgr.Name())

	packages, err := pkgmgr.Split(prereqPackages)
	if err != nil {
		return err
	}

	steps := []struct {
		name string
		fn   func() error
	}{
		{"Ensuring download tool", func() error {
			if system.HasCommand("curl") || system.HasCommand("wget") {
				return nil
			}
			return mgr.Install(ctx, "curl")
		}},
		{"Refreshing package repositories", func() error {
			return mgr.Update(ctx)
		}},
		{"Installing prerequisites (" + prereqPackages + ")", func() error {
			return mgr.Install(ctx, packages...)
		}},
	}

	for i, step := range steps {
		b.Printer.Step(i+1, len(steps), step.name)
		if err := step.fn(); err != nil {
			return fmt.Errorf("%s failed: %w", step.name, err)
		}
		b.Printer.Success(step.name)
	}
	return nil
}

func (b *Bootstrap) resolveVersions(ctx context.Context, cfg *config.Bootstrap) error {
	panelVer, err := b.Releases.Latest(ctx, PanelRepo)
	if err != nil {
		return err
	}
	cfg.PanelVersion = panelVer
	b.Printer.Success("Latest panel release: %s", panelVer)

	if cfg.HasAgent() {
		agentVer, err := b.Releases.Latest(ctx, AgentRepo)
		if err != nil {
			return err
		}
		cfg.AgentVersion = agentVer
		b.Printer.Success("Latest agent release: %s", agentVer)
	}

	cfg.PanelURL = panelArchiveURL(cfg.PanelVersion)
	if cfg.HasAgent() {
		cfg.AgentURL = agentArchiveURL(cfg.AgentVersion, cfg.OSArch)
	}
	cfg.ScriptsURL = scriptsURL(cfg.Branch)
	return nil
}

// collectAdmin gathers the administrator account. The returned
// string is the generated password when the admin accepted the
// default, otherwise empty.
func (b *Bootstrap) collectAdmin(cfg *config.Bootstrap) (string, error) {
	b.Printer.Info("")
	b.Printer.Info("Administrator account")

	user, err := b.Collector.Required("Admin username", "admin")
	if err != nil {
		return "", err
	}
	cfg.AdminUser = user

	email, err := b.Collector.Email("Admin email")
	if err != nil {
		return "", err
	}
	cfg.AdminEmail = email

	generated, err := random.Password(generatedPasswordLength)
	if err != nil {
		return "", err
	}
	password, err := b.Collector.Password("Admin password (enter to generate)", generated)
	if err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash admin password: %w", err)
	}
	cfg.AdminPasswordHash = string(hash)

	if password == generated {
		return generated, nil
	}
	return "", nil
}

func (b *Bootstrap) persist(cfg *config.Bootstrap) error {
	if err := b.Store.Save(cfg); err != nil {
		return fmt.Errorf("save bootstrap state: %w", err)
	}

	if cfg.HasAgent() {
		agent := &config.Agent{
			PanelAddr:   fmt.Sprintf("https://127.0.0.1:%d", cfg.PanelPort),
			Version:     cfg.AgentVersion,
			DownloadURL: cfg.AgentURL,
			LogLevel:    "info",
		}
		if err := config.WriteAgent(b.ConfigDir, agent); err != nil {
			return fmt.Errorf("write agent config: %w", err)
		}
	}

	if err := cfg.ExportEnv(b.ConfigDir); err != nil {
		return fmt.Errorf("export bootstrap environment: %w", err)
	}
	return nil
}

// detectPublicIP asks an external echo service for the host's IPv4.
// Best effort only; the summary falls back to localhost.
func detectPublicIP() string {
	ip, err := system.OutputTimeout(5*time.Second,
		"curl", "-4", "-s", "--max-time", "5", "ifconfig.me")
	if err != nil {
		return ""
	}
	if len(strings.Split(ip, ".")) != 4 {
		return ""
	}
	return ip
}
