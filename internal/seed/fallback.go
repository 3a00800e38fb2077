package seed

// Fallback returns the built-in entry set used when no external seed source is
// available. Words are already lowercase.
func Fallback() []Entry {
	return []Entry{
		{Word: "algorithm", Definition: "A step-by-step procedure for solving a problem."},
		{Word: "api", Definition: "Application Programming Interface; protocols for building software."},
		{Word: "array", Definition: "A data structure containing a collection of elements."},
		{Word: "bank", Definition: "An institution for handling money; also, the land beside water."},
		{Word: "boolean", Definition: "A data type with only two values: true or false."},
		{Word: "buffer", Definition: "Temporary storage for data being transferred."},
		{Word: "cache", Definition: "Storage for faster future data access."},
		{Word: "class", Definition: "A blueprint for creating objects in OOP."},
		{Word: "compiler", Definition: "A program that translates source code into machine code."},
		{Word: "database", Definition: "An organized collection of structured data."},
		{Word: "debug", Definition: "To find and fix errors in software."},
		{Word: "function", Definition: "A reusable block of code that performs a task."},
		{Word: "interpreter", Definition: "A program that executes instructions directly."},
		{Word: "loop", Definition: "A construct that repeats a block of code."},
		{Word: "memory", Definition: "Storage for data and instructions."},
		{Word: "object", Definition: "An instance of a class with data and methods."},
		{Word: "pointer", Definition: "A variable storing a memory address."},
		{Word: "recursion", Definition: "A technique where a function calls itself."},
		{Word: "string", Definition: "A sequence of characters representing text."},
		{Word: "variable", Definition: "A named storage location for data."},
	}
}
