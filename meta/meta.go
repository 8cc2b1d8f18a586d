// meta/meta.go
package meta

// BOARD_WIDTH and BOARD_HEIGHT define the standard playfield.
const BOARD_WIDTH = 10
const BOARD_HEIGHT = 20

// SUB_WELL is the board width Q-learning trains on.
const SUB_WELL = 4

// TRAIN_HEIGHT is the height of the training board, tall enough that episodes
// rarely end by overflow.
const TRAIN_HEIGHT = 1000

// EPISODES defines the number of training episodes.
const EPISODES = 200

// MAX_PIECES stops a game that is still going.
const MAX_PIECES = 10000

// TABLE_FILE is where a trained table is stored by default.
const TABLE_FILE = "ql.csv"
