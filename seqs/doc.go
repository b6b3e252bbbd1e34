/*
Package seqs provides [Seq], a lazy, chainable sequence built on Go 1.23+ iterators.

A Seq holds a producer. Adapters wrap the producer of their input in a new one and
return a new Seq; nothing is computed until a consumer pulls from the outermost
producer, which pulls from each inner one a single element at a time.

  - **Sources**: [Of], [From], [FromPull], [Once], [Repeat], [Range], [RangeFrom],
    [RangeStep], [Chain].
  - **Adapters**: [Seq.Map], [Seq.Filter], [Seq.Skip], [Seq.SkipWhile], [Seq.Take],
    [Seq.TakeWhile], [Seq.Slice], [Seq.Step], [Seq.Cycle], [Seq.CycleN], [Seq.Stretch],
    [Seq.Accumulate], [Seq.Inspect], [Seq.Chain], and the type-changing functions
    [Map], [Enumerate], [Zip], [Zip2], [Chunks], [Windows], [Flatten], [FlattenSlices],
    [FlattenDepth], [Nest], [NestRange], [Unique], [UniqueBy], [AccumulateFrom].
  - **Consumers**: [Seq.Collect], [Seq.Reduce], [ReduceInit], [Seq.Count],
    [Seq.CountIf], [Seq.Rate], [Seq.First], [Seq.Last], [Seq.Nth], [Seq.Find],
    [Seq.Position], [Seq.Every], [Seq.Some], [Seq.Partition], [Seq.ForEach],
    [Seq.Consume], [Sum], [Min], [Max], [MinBy], [MaxBy], [Unzip], [Unzip2], [UnzipAny].

	evens, err := seqs.RangeFrom(0).
		Filter(func(n, _ int) bool { return n%2 == 0 }).
		Take(3).
		Collect() // [0 2 4]

# Errors

Invalid arguments (negative counts, a zero step, an out-of-range flatten depth) are
detected when the adapter is called. The error is recorded on the returned Seq,
reported by [Seq.Err], and returned by every consumer further down the chain; it
wraps [ErrInvalidArgument]. Data-dependent failures ([ErrEmptyReduction],
[ErrTypeMismatch]) surface when the sequence is consumed.

# Memory

Only [Seq.Cycle], [Windows], [Unique]/[UniqueBy] and [FlattenDepth] buffer elements.
Cycle records its whole first pass and Unique remembers every key: bound their
input, for example with [Seq.Take], when it may be large or infinite.

Sequences are not safe for concurrent use.
*/
package seqs
