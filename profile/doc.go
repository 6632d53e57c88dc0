// Package profile provides optional runtime profiling built on
// [github.com/pkg/profile].
//
// Profiling is compiled in only with the pprof build tag:
//
//	go build -tags pprof -o blockconf .
//	blockconf --pprof-mode cpu -o out.conf < in.toml
//	go tool pprof blockconf ~/.cache/blockconf/pprof/cpu.pprof
//
// Without the tag, [Modes] is empty and [Config.Start] does nothing.
//
//	p := profile.Make(
//		profile.WithMode("heap"),
//		profile.WithPath("/tmp/profiles"),
//	).Start()
//	defer p.Stop()
package profile
