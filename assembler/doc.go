/*

Process of assembling

Assembly Text ->
	normalize ->
Instruction Lines (no comments, no spaces, no empty lines) ->
	labels ->
Instruction Lines (no label declarations) ->
	symbols ->
Resolved Lines (every address is a number) ->
	encode ->
Machine Words (16 chars of 0 and 1 per line)

Labels, variables and built-in registers share one symbol table.
The first definition of a name wins.

*/
package assembler
