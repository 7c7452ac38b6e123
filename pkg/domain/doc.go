/*
Package domain contains the core data model of the lockgrid engine.

It defines the grid of tokens that gets compacted, the four-direction
instruction alphabet and the events emitted while instructions are applied
or optimized. This package is kept pure and free of I/O.

# Key Entities

  - Grid: a rectangular W×H arrangement of cells, each holding a Token or Empty.
  - Instruction: one of Left, Right, Up or Down, each with a fixed Opposite.
  - Sequence: an ordered list of Instructions, parsed from "LRUD" strings.
  - LifecycleHooks: optional callbacks used for logging and metrics.
*/
package domain
