package openaddr

/*
	This hash map implementation uses a closed hashing (open addressing) technique. Every
	entry lives directly in the slot array, and collisions are resolved by probing further
	slots until the key or an empty slot turns up. Two probe sequences are available:
	01) linear:    next = (pos + 1) & mask
	02) perturbed: next = (5*pos + 1 + perturb) & mask, then perturb >>= 5, where perturb
	    starts out as the full 64 bit hash. Once perturb drains to zero the recurrence is a
	    full period generator over a power of two table, so every slot is eventually visited.
	More information about these techniques can be found in the links provided below:
	01) https://en.wikipedia.org/wiki/Open_addressing
	02) https://github.com/python/cpython/blob/main/Objects/dictobject.c
	The basic principal is:
	-----------------------
	1) Calculate the hash value and initial index of the entry
	2) Follow the probe sequence, slot by slot
	3) Lookups stop at the matching key or at the first slot that has never been used
	4) Deletes leave a tombstone behind so that later keys on the same path stay reachable
	5) Inserts remember the first tombstone they cross and reuse it if the key is new
	6) The table doubles once two thirds of the slots are live, halves once fewer than a
	   third are, and is rebuilt in place when tombstones push it over two thirds
*/
