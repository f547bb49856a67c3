/*
Package gridworld provides a deterministic grid-world environment for tabular
reinforcement learning.

The environment is a square lattice of cells addressed by a single integer
index in [0, side*side). One cell is the goal. Given a cell and a directional
action, the environment computes the next cell, a reward, and whether the
goal was reached. The transition function is pure: it holds no mutable state
and is safe for concurrent use.
*/
package gridworld
