// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

// channelMode is the tag of a Channel.
type channelMode int

const (
	modeUnset channelMode = iota
	modeDisabled
	modeEnabled
	modeCustom
)

// Channel configures one logging channel.
//
// The zero value is unset and lets the logger being built apply its default.
// Use [Enabled], [Disabled], [Toggle] or [Custom] to make an explicit choice.
type Channel struct {
	mode channelMode
	fn   LogFunc
}

// Enabled returns a Channel that uses the default behavior of the logger being built.
func Enabled() Channel { return Channel{mode: modeEnabled} }

// Disabled returns a Channel that discards everything.
func Disabled() Channel { return Channel{mode: modeDisabled} }

// Toggle returns [Enabled] for true and [Disabled] for false.
func Toggle(enabled bool) Channel {
	if enabled {
		return Enabled()
	}
	return Disabled()
}

// Custom returns a Channel that replaces the default behavior with fn.
// A nil fn yields an unset Channel.
func Custom(fn LogFunc) Channel {
	if fn == nil {
		return Channel{}
	}
	return Channel{mode: modeCustom, fn: fn}
}

// IsSet reports whether an explicit choice was made for the channel.
func (c Channel) IsSet() bool { return c.mode != modeUnset }

// Options holds the per channel configuration used when building a Logger.
type Options struct {
	Info    Channel
	Error   Channel
	Warning Channel
	Section Channel
	Verbose Channel
}

// ResolveLogFunc picks the function that backs a channel.
//
// A disabled channel resolves to a no-op and a custom channel to its own
// function. An enabled channel resolves to normal. An unset channel resolves
// to normal when undefinedUsesNormal is true and to a no-op otherwise.
// Resolution has no side effects; normal is only called when the returned
// function is.
func ResolveLogFunc(opt Channel, normal LogFunc, undefinedUsesNormal bool) LogFunc {
	switch opt.mode {
	case modeDisabled:
		return noop
	case modeCustom:
		return opt.fn
	case modeEnabled:
		return normal
	default:
		if undefinedUsesNormal {
			return normal
		}
		return noop
	}
}

// resolve builds a Funcs from opts over the defaults in normal.
// Verbose stays silent unless it is set explicitly.
func resolve(opts Options, normal Funcs) Funcs {
	return Funcs{
		Info:    ResolveLogFunc(opts.Info, normal.Info, true),
		Error:   ResolveLogFunc(opts.Error, normal.Error, true),
		Warning: ResolveLogFunc(opts.Warning, normal.Warning, true),
		Section: ResolveLogFunc(opts.Section, normal.Section, true),
		Verbose: ResolveLogFunc(opts.Verbose, normal.Verbose, false),
	}
}
