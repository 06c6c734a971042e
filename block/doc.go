// Package block decodes the blocks an OPUS directory points at and
// assembles them into a File.
//
// Decoding is a single synchronous pass over an immutable buffer, staged
// as a linear state machine:
//
//	Init -> DirectoryRead -> BlockScan -> AxisReconciliation -> SeriesAssembly -> Done
//
// DirectoryRead walks the directory table, skipping corrupt slots.
// BlockScan decodes every surviving entry by its type: parameter blocks,
// data blocks, native data-series blocks, the file log and reports.
// AxisReconciliation pairs each data block with the data-status parameter
// block that carries its axis bounds; the pairing is deferred to this
// stage because the directory does not guarantee that a status block
// precedes its data block. SeriesAssembly groups repeated same-type data
// blocks into series and unpacks native series blocks. Done resolves
// metadata labels and builds the File.
//
// Only a missing or truncated file header aborts a parse. Every other
// problem (a corrupt directory slot, a truncated block, an unmatched data
// block) is recovered locally: the damaged piece is skipped or flagged and
// the remainder of the file is still extracted, with a Diagnostic recorded
// per incident. Decoding the same buffer twice yields identical output.
package block
