// Command retime runs the Leiserson-Saxe retiming pipeline against a
// circuit graph file (§6.1-§6.4): it reads input_filepath, builds a
// *core.Graph, runs retime.Run with the given control_steps and
// clock_period, and writes the retimed graph to output_filepath (or
// output/<input-basename> by default).
//
// A "gen" subcommand drives circuitgen to produce sample circuit files
// for experimentation.
package main
