// Package playback replays a recorded step sequence.
//
//   - [Player]: cursor, play/pause state and speed over one [step.Sequence]
//   - [Autoplay]: event loop that drives a Player from commands and timer ticks
//
// # Ticks
//
// Every transition that should cancel scheduled autoplay (Load, Play, Pause,
// manual stepping, seeking) advances the Player's epoch. A tick carries the
// epoch it was scheduled under and [Player.Tick] ignores ticks from older
// epochs, so a stale timer can never overwrite a seek.
//
// # Thread Safety
//
// Player is NOT thread-safe. It belongs to a single view or to an Autoplay
// loop and is mutated only through its methods.
package playback
