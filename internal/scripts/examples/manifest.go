// Package examples bundles a small set of scripts and the content rows that
// bind them. The binary loads them when nothing else is configured.
package examples

import (
	"bytes"
	_ "embed"

	"github.com/zeusync/scripthost/internal/core/content"
	"github.com/zeusync/scripthost/internal/core/observability/log"
	"github.com/zeusync/scripthost/internal/core/scripting"
)

//go:embed content.yaml
var contentYAML []byte

// Content returns the directory the bundled scripts are declared in.
func Content() (*content.Directory, error) {
	return content.LoadYAML(bytes.NewReader(contentYAML))
}

// Manifest lists every bundled script in registration order.
func Manifest(logger log.Log) scripting.Manifest {
	if logger == nil {
		logger = log.NewNop()
	}
	logger = logger.Named("examples")

	return scripting.Manifest{
		{Kind: scripting.KindWorld, New: func() scripting.Script { return newWorldClock(logger) }},
		{Kind: scripting.KindFormula, New: func() scripting.Script { return newWeekendHonor() }},
		{Kind: scripting.KindCreature, New: func() scripting.Script { return newStormwindGuard() }},
		{Kind: scripting.KindSpellScriptLoader, New: func() scripting.Script { return newFrostNova() }},
		{Kind: scripting.KindInstanceMap, New: func() scripting.Script { return newDeadmines() }},
		{Kind: scripting.KindCondition, New: func() scripting.Script { return newMinLevel(60) }},
		{Kind: scripting.KindCommand, New: func() scripting.Script { return newScriptCommands(logger) }},
	}
}
