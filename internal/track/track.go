// Package track runs the attribution pipeline: validate the program id,
// resolve the network, fetch the program account and extract the build
// account name from its image. Each stage consumes the previous stage's value;
// the first failure ends the run.
package track

import (
	"context"
	"encoding/hex"
	"time"

	"golang.org/x/crypto/sha3"

	"github.com/AIAleph/soltrack/internal/attribution"
	"github.com/AIAleph/soltrack/internal/chain"
	"github.com/AIAleph/soltrack/internal/errs"
	"github.com/AIAleph/soltrack/internal/logging"
)

// Stage is a state of the pipeline.
type Stage string

const (
	StageStart              Stage = "start"
	StageValidated          Stage = "validated"
	StageNetworkResolved    Stage = "network_resolved"
	StageFetched            Stage = "fetched"
	StageVerifiedExecutable Stage = "verified_executable"
	StageExtracted          Stage = "extracted"
	StageFailed             Stage = "failed"
)

// ProviderFactory builds the RPC provider for a resolved endpoint.
type ProviderFactory func(network chain.Network, endpoint string) (chain.Provider, error)

// Request is the user input to a run. An empty Network means mainnet.
type Request struct {
	ProgramID string
	Network   string
}

// Result is a successful attribution.
type Result struct {
	ProgramID   string `json:"program_id" yaml:"program_id"`
	Network     string `json:"network" yaml:"network"`
	Endpoint    string `json:"endpoint" yaml:"endpoint"`
	Username    string `json:"username" yaml:"username"`
	ImageSize   int    `json:"image_size" yaml:"image_size"`
	ImageDigest string `json:"image_digest" yaml:"image_digest"`
}

// Tracker wires the pipeline to a provider factory.
type Tracker struct {
	newProvider ProviderFactory
}

// New returns a Tracker that builds providers with f.
func New(f ProviderFactory) *Tracker {
	return &Tracker{newProvider: f}
}

// Track runs the pipeline for req. On failure it returns the terminal error
// annotated with the stage it was raised from; the Result is zero.
func (t *Tracker) Track(ctx context.Context, req Request) (res Result, err error) {
	start := time.Now()
	stage := StageStart
	logger := logging.Logger()
	logger.Debug("track_start", "component", "track", "program_id", req.ProgramID, "network", req.Network)
	defer func() {
		if err != nil {
			err = errs.WithStage(err, string(stage))
			logger.Warn("track_failed",
				"component", "track",
				"program_id", req.ProgramID,
				"network", req.Network,
				"stage", string(stage),
				"state", string(StageFailed),
				"kind", errs.Kind(err),
				"error", errs.Message(err),
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return
		}
		logger.Info("track_done",
			"component", "track",
			"program_id", res.ProgramID,
			"network", res.Network,
			"username", res.Username,
			"image_size", res.ImageSize,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
	}()

	key, err := chain.ParseProgramID(req.ProgramID)
	if err != nil {
		return Result{}, err
	}
	stage = StageValidated

	network, endpoint, err := chain.ResolveNetwork(req.Network)
	if err != nil {
		return Result{}, err
	}
	stage = StageNetworkResolved

	p, err := t.newProvider(network, endpoint)
	if err != nil {
		return Result{}, errs.NewAccountFetch(err, map[string]any{"endpoint": endpoint})
	}
	acct, err := chain.FetchProgram(ctx, p, key)
	if err != nil {
		if errs.Is(err, errs.NotExecutable) {
			stage = StageFetched
		}
		return Result{}, err
	}
	stage = StageVerifiedExecutable

	username, err := attribution.Extract(acct.Data)
	if err != nil {
		return Result{}, err
	}
	stage = StageExtracted

	return Result{
		ProgramID:   req.ProgramID,
		Network:     network.String(),
		Endpoint:    endpoint,
		Username:    username,
		ImageSize:   len(acct.Data),
		ImageDigest: ImageDigest(acct.Data),
	}, nil
}

// ImageDigest returns the hex SHA3-256 of a program image.
func ImageDigest(data []byte) string {
	sum := sha3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
