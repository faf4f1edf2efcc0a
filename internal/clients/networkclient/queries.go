package networkclient

const getLatestErasQuery = `
query GetLatestEras {
  eras(first: 2, orderBy: CREATED_BLOCK_DESC) {
    nodes {
      id
      startTime
      endTime
    }
  }
}`

const getIndexerStakesByErasQuery = `
query GetIndexerStakesByEras($eraIds: [String!]) {
  indexerStakes(filter: { eraId: { in: $eraIds } }) {
    groupedAggregates(groupBy: ERA_ID) {
      keys
      sum {
        delegatorStake
        indexerStake
        totalStake
      }
    }
  }
}`

const getIndexerStakesByIndexerQuery = `
query GetIndexerStakesByIndexer($indexerId: String!, $eraIds: [String!]) {
  indexerStakes(filter: { indexerId: { equalTo: $indexerId }, eraId: { in: $eraIds } }) {
    groupedAggregates(groupBy: ERA_ID) {
      keys
      sum {
        delegatorStake
        indexerStake
        totalStake
      }
    }
  }
}`

const getEraDelegatorIndexersQuery = `
query GetEraDelegatorIndexers($account: String!) {
  eraDelegatorIndexers(filter: { delegator: { equalTo: $account } }, orderBy: ERA_ASC) {
    nodes {
      era
      totalStake
      selfStake
    }
  }
}`
