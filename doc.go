/*
Package minitalk implements the front end of an interpreter for a small
Smalltalk-like notation: a tokenizer for the full literal grammar, and an
evaluator for binary arithmetic messages over integers and floats.

Minitalk Primer

Smalltalk binary messages have no precedence. They are sent strictly left to
right, so

	2 + 3 * 4

sends + with argument 3 to 2, then sends * with argument 4 to the result,
producing 20. A minus sign at the start of a line, or directly after another
operator, negates the number that follows it:

	-5 + 3     => -2
	5 - - 3    => 8

Integers combine to integers; any float operand promotes the result to a float,
which prints with ten fractional digits:

	3 + 0.5    => 3.5000000000

Integers may be written in any base from 2 to 36 by prefixing the base and r:

	16rFF      => 255

Every number is an Object whose add, sub, and mul slots hold operations bound
to that number. The evaluator sends an operator by looking up the slot on the
receiver and activating it with the next literal as the argument. Use NewVM to
create an interpreter and DoString to evaluate a line:

	vm := minitalk.NewVM()
	fmt.Println(vm.AsString(vm.DoString("2 + 3 * 4")))

The tokenizer recognizes the rest of the notation as well, including strings
('it''s'), symbols (#foo, #'foo bar'), characters ($a), literal arrays
(#(1 2 3)), byte arrays (#[1 2 3]), and comments ("..."), although the
evaluator currently ignores everything but numbers and the + - * operators.
*/
package minitalk
